package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/itemreport/internal/model"
)

// ErrUserNotFound is returned when no user exists with the requested ID.
var ErrUserNotFound = errors.New("user not found")

// StoreDB provides SQLite-based storage for users and their items.
// It manages connection pooling and provides methods for the read and
// write operations the pipeline and CLI need.
type StoreDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures StoreDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// read performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a StoreDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created; otherwise a missing database is an error.
func Open(dbDir string, opts Options) (*StoreDB, error) {
	dbPath := filepath.Join(dbDir, "itemreport.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite DSN: mode=rw prevents creating new files,
	// mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; multiple readers go through WAL.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &StoreDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (s *StoreDB) Close() error {
	return s.db.Close()
}

// Path returns the path to the SQLite database file.
func (s *StoreDB) Path() string {
	return s.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (s *StoreDB) createTables() error {
	schema := `
	-- Users requesting reports
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL
	);

	-- Items owned by users; one report renders one user's items
	CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		value REAL NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// SaveUser inserts or replaces a user.
func (s *StoreDB) SaveUser(ctx context.Context, user model.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO users (id, name, role) VALUES (?, ?, ?)`,
		user.ID, user.Name, string(user.Role),
	)
	if err != nil {
		return fmt.Errorf("failed to save user %d: %w", user.ID, err)
	}
	return nil
}

// GetUser returns the user with the given ID, or ErrUserNotFound.
func (s *StoreDB) GetUser(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	var role string

	row := s.db.QueryRowContext(ctx, `SELECT id, name, role FROM users WHERE id = ?`, id)
	if err := row.Scan(&user.ID, &user.Name, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return model.User{}, fmt.Errorf("failed to query user %d: %w", id, err)
	}

	user.Role = model.Role(role)
	return user, nil
}

// ListUsers returns all users ordered by ID.
func (s *StoreDB) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []model.User
	for rows.Next() {
		var user model.User
		var role string
		if err := rows.Scan(&user.ID, &user.Name, &role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Role = model.Role(role)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// SaveItem inserts or replaces an item owned by the given user.
func (s *StoreDB) SaveItem(ctx context.Context, userID int64, item model.Item) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO items (id, user_id, name, value) VALUES (?, ?, ?, ?)`,
		item.ID, userID, item.Name, item.Value,
	)
	if err != nil {
		return fmt.Errorf("failed to save item %d: %w", item.ID, err)
	}
	return nil
}

// ListItems returns the items owned by the given user, ordered by ID.
// The report pipeline relies on this order being stable: processed
// items preserve the relative order of the input sequence.
func (s *StoreDB) ListItems(ctx context.Context, userID int64) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, value FROM items WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Value); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}
