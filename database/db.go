package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

var fieldName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// DB is the SQLite document backend. Each collection is a table holding
// one JSON document per row.
type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	var queries []string
	for _, c := range collections {
		queries = append(queries, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL UNIQUE,
			doc TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`, c))
	}

	// Indexes for field lookups
	for _, idx := range secondaryIndexes {
		queries = append(queries, fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s(json_extract(doc, '$.%s'))`,
			idx.collection, strings.ToLower(idx.field), idx.collection, idx.field,
		))
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Insert(ctx context.Context, collection, key string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	_, err = db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (key, doc, created_at) VALUES (?, ?, ?)`, collection),
		key, string(body), time.Now(),
	)
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return err
}

func (db *DB) FindAll(ctx context.Context, collection string, out any) error {
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf(`SELECT doc FROM %s ORDER BY seq ASC`, collection))
	if err != nil {
		return err
	}
	return decodeRows(rows, out)
}

func (db *DB) FindOne(ctx context.Context, collection, field, value string, out any) error {
	where, err := fieldClause(field)
	if err != nil {
		return err
	}

	var body string
	err = db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE %s ORDER BY seq ASC LIMIT 1`, collection, where),
		value,
	).Scan(&body)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(body), out)
}

func (db *DB) Find(ctx context.Context, collection, field, value string, out any) error {
	where, err := fieldClause(field)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE %s ORDER BY seq ASC`, collection, where),
		value,
	)
	if err != nil {
		return err
	}
	return decodeRows(rows, out)
}

func (db *DB) Replace(ctx context.Context, collection, key string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	res, err := db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET doc = ? WHERE key = ?`, collection),
		string(body), key,
	)
	if err != nil {
		return err
	}
	return affectedOne(res)
}

func (db *DB) Delete(ctx context.Context, collection, key string) error {
	res, err := db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE key = ?`, collection), key)
	if err != nil {
		return err
	}
	return affectedOne(res)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

func (db *DB) Close(ctx context.Context) error {
	return db.DB.Close()
}

// fieldClause builds the WHERE clause for a top-level field lookup.
// The key column is used directly so it can hit the unique index.
func fieldClause(field string) (string, error) {
	if field == "key" {
		return "key = ?", nil
	}
	if !fieldName.MatchString(field) {
		return "", fmt.Errorf("invalid field name %q", field)
	}
	return fmt.Sprintf("json_extract(doc, '$.%s') = ?", field), nil
}

// decodeRows joins the JSON documents into one array and decodes it into out
func decodeRows(rows *sql.Rows, out any) error {
	defer rows.Close()

	var buf strings.Builder
	buf.WriteByte('[')
	n := 0
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return err
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(body)
		n++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	buf.WriteByte(']')

	return json.Unmarshal([]byte(buf.String()), out)
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
