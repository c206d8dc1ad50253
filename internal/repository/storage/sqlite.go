package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// preferencesPragmas make concurrent score writes wait for the lock instead of failing with SQLITE_BUSY.
const preferencesPragmas = "?_pragma=busy_timeout(5000)"

// Storage is the local preferences database.
type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", "file:"+path+preferencesPragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database %s: %w", path, err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to reach preferences database %s: %w", path, err)
	}

	return &Storage{Connection: conn}, nil
}

// Init creates the preferences table if it does not exist.
func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS preferences (
		profile TEXT NOT NULL,
		key     TEXT NOT NULL,
		value   TEXT NOT NULL,
		PRIMARY KEY (profile, key)
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close preferences database: %w", err)
	}

	return nil
}
