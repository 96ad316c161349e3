package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vbonduro/gridtrack/internal/domain"
	"github.com/vbonduro/gridtrack/internal/workdir"
)

const reconcileWorkers = 4

// assetRepository is the subset of store.AssetStore that AssetService requires.
type assetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	List(ctx context.Context) ([]*domain.Asset, error)
}

type AssetService struct {
	assets   assetRepository
	workdirs workdir.Provisioner
	logger   *slog.Logger
}

func NewAssetService(assets assetRepository, workdirs workdir.Provisioner, logger *slog.Logger) *AssetService {
	return &AssetService{
		assets:   assets,
		workdirs: workdirs,
		logger:   logger,
	}
}

// CreateAsset validates in, persists the asset and then provisions its
// working directory. If provisioning fails the asset stays persisted and is
// returned together with a *domain.ProvisioningError.
func (s *AssetService) CreateAsset(ctx context.Context, in NewAsset) (*domain.Asset, error) {
	asset, err := validateAsset(in)
	if err != nil {
		return nil, err
	}
	if !asset.Type.Known() {
		s.logger.Warn("unrecognized asset type", "name", asset.Name, "type", asset.Type)
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	s.logger.Info("asset created", "name", asset.Name, "type", asset.Type)

	path, created, err := s.workdirs.Ensure(ctx, asset.Name)
	if err != nil {
		s.logger.Error("working directory not created", "name", asset.Name, "path", path, "error", err)
		return asset, &domain.ProvisioningError{Asset: asset.Name, Path: path, Err: err}
	}
	s.logger.Debug("working directory ready", "name", asset.Name, "path", path, "created", created)

	return asset, nil
}

func (s *AssetService) ListAssets(ctx context.Context) ([]*domain.Asset, error) {
	return s.assets.List(ctx)
}

type ReconcileFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ReconcileReport lists, in asset order, the working directories that had to
// be created and the ones that could not be.
type ReconcileReport struct {
	Created []string           `json:"created"`
	Failed  []ReconcileFailure `json:"failed"`
}

// ReconcileWorkdirs ensures a working directory exists for every stored asset.
// Individual failures are reported, not returned; only a failure to list the
// assets is an error.
func (s *AssetService) ReconcileWorkdirs(ctx context.Context) (*ReconcileReport, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for reconcile: %w", err)
	}
	s.logger.Info("reconcile started", "assets", len(assets))

	created := make([]bool, len(assets))
	failures := make([]error, len(assets))

	var g errgroup.Group
	g.SetLimit(reconcileWorkers)
	for i, asset := range assets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				failures[i] = err
				return nil
			}
			_, created[i], failures[i] = s.workdirs.Ensure(ctx, asset.Name)
			return nil
		})
	}
	_ = g.Wait()

	report := &ReconcileReport{Created: []string{}, Failed: []ReconcileFailure{}}
	for i, asset := range assets {
		switch {
		case failures[i] != nil:
			s.logger.Error("reconcile failed", "name", asset.Name, "error", failures[i])
			report.Failed = append(report.Failed, ReconcileFailure{Name: asset.Name, Error: failures[i].Error()})
		case created[i]:
			s.logger.Info("working directory restored", "name", asset.Name)
			report.Created = append(report.Created, asset.Name)
		}
	}

	s.logger.Info("reconcile complete", "created", len(report.Created), "failed", len(report.Failed))
	return report, nil
}
