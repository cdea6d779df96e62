package storages

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/bfi/bfvm"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("snapshot not found")

// Store keeps named machine states in a sqlite database.
type Store struct {
	db *sql.DB
}

type Snapshot struct {
	ID        uuid.UUID
	Name      string
	Dialect   string
	CreatedAt time.Time
	State     bfvm.State
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	dialect TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	state BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS snapshots_name ON snapshots (name, created_at);
`

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, name string, dialect string, state bfvm.State) (ret Snapshot, err error) {
	if name == "" {
		return ret, fmt.Errorf("empty snapshot name")
	}
	buf := new(bytes.Buffer)
	if err := bfvm.EncodeState(buf, state); err != nil {
		return ret, err
	}
	ret = Snapshot{
		ID:        uuid.New(),
		Name:      name,
		Dialect:   dialect,
		CreatedAt: time.Now(),
		State:     state,
	}
	err = s.WithTx(ctx, func(tx Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO snapshots (id, name, dialect, created_at, state) VALUES (?, ?, ?, ?, ?)`,
			ret.ID.String(),
			ret.Name,
			ret.Dialect,
			ret.CreatedAt.UnixNano(),
			buf.Bytes(),
		)
		return err
	})
	return
}

// Load returns the latest snapshot saved under name.
func (s *Store) Load(ctx context.Context, name string) (ret Snapshot, err error) {
	err = s.WithTx(ctx, func(tx Tx) error {
		row, err := tx.QueryRow(ctx,
			`SELECT id, name, dialect, created_at, state FROM snapshots WHERE name = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
			name,
		)
		if err != nil {
			return err
		}
		ret, err = scanSnapshot(row.Scan, true)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ret, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return
}

// List returns all snapshots without their states, newest first.
func (s *Store) List(ctx context.Context) (ret []Snapshot, err error) {
	err = s.WithTx(ctx, func(tx Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT id, name, dialect, created_at, state FROM snapshots ORDER BY created_at DESC, rowid DESC`,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			snapshot, err := scanSnapshot(rows.Scan, false)
			if err != nil {
				return err
			}
			ret = append(ret, snapshot)
		}
		return rows.Err()
	})
	return
}

// Delete removes every snapshot saved under name.
func (s *Store) Delete(ctx context.Context, name string) (n int64, err error) {
	err = s.WithTx(ctx, func(tx Tx) error {
		res, err := tx.Exec(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return
}

func scanSnapshot(scan func(...any) error, withState bool) (ret Snapshot, err error) {
	var id string
	var createdAt int64
	var blob []byte
	if err := scan(&id, &ret.Name, &ret.Dialect, &createdAt, &blob); err != nil {
		return ret, err
	}
	ret.ID, err = uuid.Parse(id)
	if err != nil {
		return ret, err
	}
	ret.CreatedAt = time.Unix(0, createdAt)
	if withState {
		ret.State, err = bfvm.DecodeState(bytes.NewReader(blob))
		if err != nil {
			return ret, fmt.Errorf("decode %s: %w", ret.Name, err)
		}
	}
	return ret, nil
}
