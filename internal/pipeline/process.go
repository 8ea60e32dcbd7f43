package pipeline

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"handhelds/internal"
	"handhelds/internal/logger"
	"handhelds/internal/scoring"
	"handhelds/internal/tags"
)

type Builder struct {
	mapper  *Mapper
	deriver *tags.Deriver
	workers int
	log     *slog.Logger
}

func NewBuilder(schema *Schema, deriver *tags.Deriver, workers int, log *slog.Logger) *Builder {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = logger.Discard()
	}
	if deriver == nil {
		deriver = tags.NewDeriver(tags.DefaultPersonalPicks)
	}
	return &Builder{mapper: NewMapper(schema), deriver: deriver, workers: workers, log: log}
}

// Build turns the data rows of a table into catalog records in source order.
// Rows with an unknown brand, an empty id or an id already taken by an
// earlier row are dropped and counted.
func (b *Builder) Build(ctx context.Context, table Table) ([]internal.Device, internal.BuildStats, error) {
	schema := b.mapper.Schema()
	stats := internal.BuildStats{}

	if header := table.Header(); header != nil {
		drift := schema.CheckHeader(header)
		for _, d := range drift {
			b.log.Warn("header drift", "schema", schema.Name, "column", d.Column, "want", d.Want, "got", d.Got)
		}
		stats.HeaderDrifted = len(drift)
	}

	rows := table.Body()
	stats.Rows = len(rows)
	built := make([]*internal.Device, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			built[i] = b.buildRow(i+1, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	out := make([]internal.Device, 0, len(built))
	seen := make(map[string]int, len(built))
	for _, d := range built {
		switch {
		case d.Brand.Raw == UnknownBrand:
			stats.UnknownBrand++
			continue
		case d.ID == "":
			stats.EmptyID++
			b.log.Debug("row without name", "schema", schema.Name, "row", d.Index)
			continue
		}
		if first, dup := seen[d.ID]; dup {
			stats.DuplicateID++
			b.log.Warn("duplicate device id", "schema", schema.Name, "id", d.ID, "row", d.Index, "first_row", first)
			continue
		}
		seen[d.ID] = d.Index
		out = append(out, *d)
	}
	stats.Kept = len(out)

	b.log.Info("catalog built",
		"schema", schema.Name,
		"rows", stats.Rows,
		"kept", stats.Kept,
		"unknown_brand", stats.UnknownBrand,
		"empty_id", stats.EmptyID,
		"duplicate_id", stats.DuplicateID,
		"header_drift", stats.HeaderDrifted,
	)
	return out, stats, nil
}

func (b *Builder) buildRow(index int, row Row) *internal.Device {
	d := b.mapper.MapRow(index, row)
	d.Tags = b.deriver.Derive(d)
	d.TotalRating = scoring.TotalRating(d)
	return d
}
