package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"handhelds/internal"
	"handhelds/internal/api"
	"handhelds/internal/catalog"
	"handhelds/internal/config"
	"handhelds/internal/logger"
	"handhelds/internal/pipeline"
	"handhelds/internal/ranking"
	"handhelds/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := os.Args[1]
	switch cmd {
	case "catalog:build":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", cfg.CatalogPath, "output json path")
		_ = fs.Parse(os.Args[2:])
		svc := catalog.NewSyncService(nil, cfg, log)
		devices, err := svc.Build(ctx)
		must(err)
		must(pipeline.WriteCatalog(devices, *out))
		fmt.Printf("catalog built devices=%d output=%s\n", len(devices), *out)
	case "catalog:sync":
		result, err := syncCatalog(ctx, cfg, log)
		must(err)
		fmt.Printf("catalog sync run=%s created=%d updated=%d skipped=%d removed=%d\n",
			result.RunID, result.Created, result.Updated, result.Skipped, result.Removed)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("catalog", cfg.CatalogPath, "catalog json path")
		out := fs.String("out", filepath.Join(cfg.OutputDir, "devices.xlsx"), "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		devices, err := pipeline.ReadCatalog(*in)
		must(err)
		must(pipeline.ExportCatalogXLSX(devices, *out))
		fmt.Printf("exported %d devices to %s\n", len(devices), *out)
	case "compare":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("catalog", cfg.CatalogPath, "catalog json path")
		_ = fs.Parse(os.Args[2:])
		idx := loadIndex(*in, cfg)
		must(compare(idx, fs.Args()))
	case "search":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("catalog", cfg.CatalogPath, "catalog json path")
		limit := fs.Int("limit", 10, "max hits")
		_ = fs.Parse(os.Args[2:])
		query := strings.Join(fs.Args(), " ")
		if strings.TrimSpace(query) == "" {
			must(fmt.Errorf("a search query is required"))
		}
		idx := loadIndex(*in, cfg)
		rows := [][]string{{"id", "device", "score"}}
		for _, hit := range idx.Search(query, *limit) {
			rows = append(rows, []string{
				hit.Device.ID,
				hit.Device.Brand.Normalized + " " + hit.Device.Name.Normalized,
				fmt.Sprintf("%.3f", hit.Score),
			})
		}
		writeTable(os.Stdout, rows)
	case "serve":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("catalog", cfg.CatalogPath, "catalog json path")
		addr := fs.String("addr", cfg.HTTPAddr, "listen address")
		_ = fs.Parse(os.Args[2:])
		idx := loadIndex(*in, cfg)
		srv := &http.Server{
			Addr:              *addr,
			Handler:           api.NewServer(idx, cfg.CORSOrigins, log).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdown)
		}()
		log.Info("serving catalog", "addr", *addr, "devices", idx.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			must(err)
		}
	default:
		usage()
		os.Exit(1)
	}
}

// syncCatalog runs one sync against the snapshot store and closes it on every path.
func syncCatalog(ctx context.Context, cfg config.Config, log *slog.Logger) (internal.SyncResult, error) {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return internal.SyncResult{}, err
	}
	defer db.Close()
	return catalog.NewSyncService(db, cfg, log).Sync(ctx)
}

func loadIndex(path string, cfg config.Config) *catalog.Index {
	devices, err := pipeline.ReadCatalog(path)
	must(err)
	return catalog.BuildIndex(devices, cfg.SearchMinScore)
}

func compare(idx *catalog.Index, ids []string) error {
	names := make([]string, 0, len(ids))
	entries := make([]ranking.Entry, 0, len(ids))
	for _, id := range ids {
		d, err := idx.Get(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		names = append(names, d.Brand.Normalized+" "+d.Name.Normalized)
		entries = append(entries, ranking.EntryFor(&d))
	}
	result, err := ranking.Compare(entries)
	if err != nil {
		return err
	}
	writeTable(os.Stdout, comparisonRows(names, entries, result))
	return nil
}

func usage() {
	fmt.Println("usage: handhelds <command>")
	fmt.Println("commands:")
	fmt.Println("  catalog:build [--out=./out/devices.json]")
	fmt.Println("  catalog:sync")
	fmt.Println("  export:xlsx [--catalog=./out/devices.json] [--out=./out/devices.xlsx]")
	fmt.Println("  compare [--catalog=...] <id> <id> [<id>...]")
	fmt.Println("  search [--catalog=...] [--limit=10] <query>")
	fmt.Println("  serve [--catalog=...] [--addr=:8080]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
