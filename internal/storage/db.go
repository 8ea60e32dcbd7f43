package storage

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"handhelds/internal"
)

// DB is the catalog snapshot store. Each sync diffs the incoming catalog
// against the stored payloads by serialized equality.
type DB struct {
	conn *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn, entropy: ulid.Monotonic(rand.Reader, 0)}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS devices (
  id TEXT PRIMARY KEY,
  deviceType TEXT NOT NULL,
  brand TEXT NOT NULL,
  name TEXT NOT NULL,
  totalRating REAL NOT NULL,
  payload TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  lastSeenAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_devices_type ON devices(deviceType);
CREATE INDEX IF NOT EXISTS idx_devices_brand ON devices(brand);

CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  startedAt TEXT NOT NULL,
  finishedAt TEXT NOT NULL,
  countsJson TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) newRunID(at time.Time) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), d.entropy).String()
}

// SyncDevices stores the catalog in one transaction. A device whose JSON
// payload is unchanged is skipped; with prune set, stored ids absent from
// devices are removed.
func (d *DB) SyncDevices(devices []internal.Device, prune bool) (internal.SyncResult, error) {
	started := time.Now().UTC()
	result := internal.SyncResult{RunID: d.newRunID(started)}

	tx, err := d.conn.Begin()
	if err != nil {
		return result, err
	}
	defer func() { _ = tx.Rollback() }()

	stored, err := storedPayloads(tx)
	if err != nil {
		return result, err
	}

	insert, err := tx.Prepare(`
INSERT INTO devices (id, deviceType, brand, name, totalRating, payload)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return result, err
	}
	defer insert.Close()

	update, err := tx.Prepare(`
UPDATE devices SET
  deviceType = ?, brand = ?, name = ?, totalRating = ?, payload = ?,
  updatedAt = CURRENT_TIMESTAMP, lastSeenAt = CURRENT_TIMESTAMP
WHERE id = ?
`)
	if err != nil {
		return result, err
	}
	defer update.Close()

	touch, err := tx.Prepare(`UPDATE devices SET lastSeenAt = CURRENT_TIMESTAMP WHERE id = ?`)
	if err != nil {
		return result, err
	}
	defer touch.Close()

	seen := make(map[string]struct{}, len(devices))
	for i := range devices {
		dev := &devices[i]
		if _, dup := seen[dev.ID]; dup {
			return result, fmt.Errorf("duplicate device id %q", dev.ID)
		}
		seen[dev.ID] = struct{}{}

		blob, err := json.Marshal(dev)
		if err != nil {
			return result, fmt.Errorf("encode device %s: %w", dev.ID, err)
		}
		payload := string(blob)

		previous, exists := stored[dev.ID]
		switch {
		case !exists:
			if _, err := insert.Exec(dev.ID, string(dev.DeviceType), dev.Brand.Normalized, dev.Name.Normalized, dev.TotalRating, payload); err != nil {
				return result, err
			}
			result.Created++
		case previous == payload:
			if _, err := touch.Exec(dev.ID); err != nil {
				return result, err
			}
			result.Skipped++
		default:
			if _, err := update.Exec(string(dev.DeviceType), dev.Brand.Normalized, dev.Name.Normalized, dev.TotalRating, payload, dev.ID); err != nil {
				return result, err
			}
			result.Updated++
		}
	}

	if prune {
		for id := range stored {
			if _, ok := seen[id]; ok {
				continue
			}
			if _, err := tx.Exec(`DELETE FROM devices WHERE id = ?`, id); err != nil {
				return result, err
			}
			result.Removed++
		}
	}

	countsJSON, _ := json.Marshal(result)
	if _, err := tx.Exec(
		`INSERT INTO runs (id, startedAt, finishedAt, countsJson) VALUES (?, ?, ?, ?)`,
		result.RunID, started.Format(time.RFC3339Nano), time.Now().UTC().Format(time.RFC3339Nano), string(countsJSON),
	); err != nil {
		return result, err
	}

	return result, tx.Commit()
}

func storedPayloads(tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.Query(`SELECT id, payload FROM devices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		out[id] = payload
	}
	return out, rows.Err()
}

// ListDevices returns stored devices ordered by id; an empty deviceType
// lists every variant.
func (d *DB) ListDevices(deviceType internal.DeviceType) ([]internal.Device, error) {
	query := `SELECT payload FROM devices ORDER BY id`
	args := []any{}
	if deviceType != "" {
		query = `SELECT payload FROM devices WHERE deviceType = ? ORDER BY id`
		args = append(args, string(deviceType))
	}

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.Device
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var dev internal.Device
		if err := json.Unmarshal([]byte(payload), &dev); err != nil {
			return nil, fmt.Errorf("decode stored device: %w", err)
		}
		out = append(out, dev)
	}
	return out, rows.Err()
}

func (d *DB) GetDevice(id string) (*internal.Device, error) {
	var payload string
	err := d.conn.QueryRow(`SELECT payload FROM devices WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dev internal.Device
	if err := json.Unmarshal([]byte(payload), &dev); err != nil {
		return nil, fmt.Errorf("decode stored device %s: %w", id, err)
	}
	return &dev, nil
}

// LastRun returns the most recent sync result, or nil before the first sync.
func (d *DB) LastRun() (*internal.SyncResult, error) {
	var countsJSON string
	err := d.conn.QueryRow(`SELECT countsJson FROM runs ORDER BY id DESC LIMIT 1`).Scan(&countsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result internal.SyncResult
	if err := json.Unmarshal([]byte(countsJSON), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
