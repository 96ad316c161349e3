package service

import (
	"regexp"
	"strings"

	"github.com/vbonduro/gridtrack/internal/domain"
)

// Asset names become directory names, so they are limited to a portable
// character set and a typical filesystem name length.
const maxAssetNameLen = 255

var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

// NewAsset is the client-supplied part of an asset.
type NewAsset struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// NewTask is the client-supplied part of a task.
type NewTask struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func validateAsset(in NewAsset) (*domain.Asset, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Msg: "asset name is required"}
	}
	if !assetNamePattern.MatchString(name) {
		return nil, &domain.ValidationError{
			Field: "name",
			Msg:   "asset name may only contain letters, digits, spaces, '_' and '-'",
		}
	}
	if len(name) > maxAssetNameLen {
		return nil, &domain.ValidationError{Field: "name", Msg: "asset name must be at most 255 characters"}
	}

	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		return nil, &domain.ValidationError{Field: "type", Msg: "asset type is required"}
	}

	return &domain.Asset{
		Name:        name,
		Type:        domain.AssetType(typ),
		Description: strings.TrimSpace(in.Description),
		Thumbnail:   "",
		Status:      domain.StatusTODO,
	}, nil
}

func validateTask(in NewTask) (*domain.Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Msg: "task name is required"}
	}
	return &domain.Task{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Assets:      []string{},
	}, nil
}
