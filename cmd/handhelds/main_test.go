package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"handhelds/internal/config"
	"handhelds/internal/logger"
	"handhelds/internal/storage"
)

const syncSheet = `<html><body><table><tbody>
<tr><td>Image</td><td>Brand</td><td>Name</td></tr>
<tr><td></td><td>Acme</td><td>Pocket One</td></tr>
</tbody></table></body></html>`

func TestSyncCatalogReturnsErrorsAndReleasesStore(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		HandheldsSource:   filepath.Join(dir, "missing.html"),
		CatalogPath:       filepath.Join(dir, "out", "devices.json"),
		DBPath:            filepath.Join(dir, "catalog.db"),
		BuildWorkers:      1,
		SourceMaxAttempts: 1,
	}
	log := logger.NewWriter(io.Discard, "error")

	if _, err := syncCatalog(context.Background(), cfg, log); err == nil {
		t.Fatal("expected a missing source to fail the sync")
	}

	cfg.HandheldsSource = filepath.Join(dir, "handhelds.html")
	if err := os.WriteFile(cfg.HandheldsSource, []byte(syncSheet), 0o644); err != nil {
		t.Fatal(err)
	}
	result, err := syncCatalog(context.Background(), cfg, log)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Created != 1 {
		t.Fatalf("result=%+v", result)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	last, err := db.LastRun()
	if err != nil || last == nil || last.RunID != result.RunID {
		t.Fatalf("last run=%+v err=%v", last, err)
	}
}
