package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"handhelds/internal"
	"handhelds/internal/config"
	"handhelds/internal/logger"
	"handhelds/internal/pipeline"
	"handhelds/internal/source"
	"handhelds/internal/storage"
	"handhelds/internal/tags"
)

const (
	metaLastSync = "catalog.last_sync"
	metaLastRun  = "catalog.last_run"
)

// Variant pairs a source document with the schema that reads it.
type Variant struct {
	DeviceType internal.DeviceType
	Location   string
}

type SyncService struct {
	db      *storage.DB
	loader  *source.Loader
	deriver *tags.Deriver
	cfg     config.Config
	log     *slog.Logger
}

// NewSyncService wires the build pipeline. db may be nil when only Build is used.
func NewSyncService(db *storage.DB, cfg config.Config, log *slog.Logger) *SyncService {
	if log == nil {
		log = logger.Discard()
	}
	picks := cfg.PersonalPicks
	if len(picks) == 0 {
		picks = tags.DefaultPersonalPicks
	}
	return &SyncService{
		db:      db,
		loader:  source.NewLoader(cfg),
		deriver: tags.NewDeriver(picks),
		cfg:     cfg,
		log:     log,
	}
}

func (s *SyncService) Variants() []Variant {
	out := []Variant{}
	if strings.TrimSpace(s.cfg.HandheldsSource) != "" {
		out = append(out, Variant{DeviceType: internal.DeviceHandheld, Location: s.cfg.HandheldsSource})
	}
	if strings.TrimSpace(s.cfg.OEMSource) != "" {
		out = append(out, Variant{DeviceType: internal.DeviceOEM, Location: s.cfg.OEMSource})
	}
	return out
}

// Build loads every configured variant and concatenates the catalogs in
// variant order. An id already produced by an earlier variant is dropped.
func (s *SyncService) Build(ctx context.Context) ([]internal.Device, error) {
	variants := s.Variants()
	if len(variants) == 0 {
		return nil, fmt.Errorf("no catalog sources configured: %w", source.ErrEmptyLocation)
	}

	out := []internal.Device{}
	seen := map[string]internal.DeviceType{}
	for _, v := range variants {
		devices, err := s.buildVariant(ctx, v)
		if err != nil {
			return nil, err
		}
		for _, d := range devices {
			if owner, dup := seen[d.ID]; dup {
				s.log.Warn("device id already in catalog", "id", d.ID, "variant", d.DeviceType, "owner", owner)
				continue
			}
			seen[d.ID] = d.DeviceType
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *SyncService) buildVariant(ctx context.Context, v Variant) ([]internal.Device, error) {
	schema, err := pipeline.SchemaFor(v.DeviceType)
	if err != nil {
		return nil, err
	}
	table, err := s.loader.LoadTable(ctx, v.Location)
	if err != nil {
		return nil, err
	}
	builder := pipeline.NewBuilder(schema, s.deriver, s.cfg.BuildWorkers, s.log)
	devices, _, err := builder.Build(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("build %s catalog: %w", v.DeviceType, err)
	}
	return devices, nil
}

// Sync builds the catalog, writes it to the catalog path and diffs it into
// the snapshot store.
func (s *SyncService) Sync(ctx context.Context) (internal.SyncResult, error) {
	if s.db == nil {
		return internal.SyncResult{}, fmt.Errorf("sync requires a snapshot store")
	}
	devices, err := s.Build(ctx)
	if err != nil {
		return internal.SyncResult{}, err
	}
	if err := pipeline.WriteCatalog(devices, s.cfg.CatalogPath); err != nil {
		return internal.SyncResult{}, fmt.Errorf("write catalog: %w", err)
	}

	result, err := s.db.SyncDevices(devices, s.cfg.SyncPrune)
	if err != nil {
		return internal.SyncResult{}, fmt.Errorf("store catalog: %w", err)
	}
	_ = s.db.SetMetadata(metaLastSync, time.Now().UTC().Format(time.RFC3339))
	_ = s.db.SetMetadata(metaLastRun, result.RunID)

	s.log.Info("catalog synced",
		"run", result.RunID,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"removed", result.Removed,
	)
	return result, nil
}
