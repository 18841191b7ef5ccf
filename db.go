package gemstar

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/gemstar/ppu"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// AssetDB caches PPU tile and palette table snapshots keyed by a hash of the
// source assets.
type AssetDB struct {
	db *sql.DB
}

// NewAssetDB opens, creating if necessary, the cache database in file.
func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	// Serialise writes from the scan workers
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS snapshot (id INTEGER PRIMARY KEY NOT NULL, hash TEXT NOT NULL UNIQUE, tables BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

// Close closes the database
func (db *AssetDB) Close() error {
	return db.db.Close()
}

func hashKey(hash uint64) string {
	return fmt.Sprintf("%016X", hash)
}

// FindSnapshot returns the snapshot stored for hash, or nil if there is none.
func (db *AssetDB) FindSnapshot(hash uint64) ([]byte, error) {
	var tables []byte
	switch err := db.db.QueryRow("SELECT tables FROM snapshot WHERE hash = ?", hashKey(hash)).Scan(&tables); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		if len(tables) != ppu.SnapshotSize {
			return nil, errors.Errorf("snapshot %s has wrong size %d", hashKey(hash), len(tables))
		}
		return tables, nil
	default:
		return nil, err
	}
}

// AddSnapshot stores the tile and palette tables of p against hash,
// replacing anything already stored.
func (db *AssetDB) AddSnapshot(hash uint64, p *ppu.PPU) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := db.db.Exec("INSERT OR REPLACE INTO snapshot (hash, tables) VALUES (?, ?)", hashKey(hash), b); err != nil {
		return err
	}
	return nil
}

// Clear removes every cached snapshot.
func (db *AssetDB) Clear() error {
	_, err := db.db.Exec("DELETE FROM snapshot")
	return err
}
