package store

import (
	"context"
	"fmt"

	"github.com/vbonduro/gridtrack/internal/db"
	"github.com/vbonduro/gridtrack/internal/domain"
)

// AssetsCollection is the collection id, and file stem, of the asset records.
const AssetsCollection = "assets"

type AssetStore struct {
	coll *db.Collection[domain.Asset]
}

func NewAssetStore(d *db.DB) *AssetStore {
	return &AssetStore{
		coll: db.NewCollection(d, AssetsCollection, func(a domain.Asset) string { return a.Name }),
	}
}

// Create appends asset. It fails with *domain.DuplicateError when an asset
// with the same name already exists.
func (s *AssetStore) Create(ctx context.Context, asset *domain.Asset) error {
	if err := s.coll.Append(ctx, *asset); err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (s *AssetStore) List(ctx context.Context) ([]*domain.Asset, error) {
	records, err := s.coll.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*domain.Asset, 0, len(records))
	for i := range records {
		assets = append(assets, &records[i])
	}
	return assets, nil
}
