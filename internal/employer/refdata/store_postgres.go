package refdata

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"verigate/pkg/platform/tx"
)

// PostgresSource loads the address directory from PostgreSQL. The directory
// is read once at startup into the immutable in-memory form the gates
// consume; the table is not queried per verification.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Migrate creates the address directory table if it does not exist.
func (s *PostgresSource) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS address_directory (
			formatted TEXT PRIMARY KEY,
			lat       DOUBLE PRECISION NOT NULL,
			lng       DOUBLE PRECISION NOT NULL,
			zoning    TEXT NOT NULL CHECK (zoning IN ('COMMERCIAL', 'RESIDENTIAL')),
			city      TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("migrate address directory: %w", err)
	}
	return nil
}

// Seed upserts entries into the table. Used at startup to guarantee the
// canonical seed rows exist. All rows go in one transaction so a partial
// seed never persists; an ambient transaction from the context is honored.
func (s *PostgresSource) Seed(ctx context.Context, entries []AddressEntry) error {
	if txn, ok := tx.From(ctx); ok {
		return s.seed(ctx, txn, entries)
	}

	txn, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	if err := s.seed(ctx, txn, entries); err != nil {
		_ = txn.Rollback()
		return err
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

func (s *PostgresSource) seed(ctx context.Context, txn *sql.Tx, entries []AddressEntry) error {
	for _, entry := range entries {
		_, err := txn.ExecContext(ctx, `
			INSERT INTO address_directory (formatted, lat, lng, zoning, city)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (formatted) DO UPDATE
			SET lat = EXCLUDED.lat,
			    lng = EXCLUDED.lng,
			    zoning = EXCLUDED.zoning,
			    city = EXCLUDED.city`,
			entry.Formatted, entry.Lat, entry.Lng, string(entry.Zoning), entry.City,
		)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("seed address %q: %s: %w", entry.Formatted, pqErr.Code.Name(), err)
			}
			return fmt.Errorf("seed address %q: %w", entry.Formatted, err)
		}
	}
	return nil
}

// LoadDirectory reads all rows into an immutable Directory.
func (s *PostgresSource) LoadDirectory(ctx context.Context) (*Directory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT formatted, lat, lng, zoning, city
		FROM address_directory
		ORDER BY formatted`)
	if err != nil {
		return nil, fmt.Errorf("load address directory: %w", err)
	}
	defer rows.Close()

	var entries []AddressEntry
	for rows.Next() {
		var entry AddressEntry
		var zoning string
		if err := rows.Scan(&entry.Formatted, &entry.Lat, &entry.Lng, &zoning, &entry.City); err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		entry.Zoning = Zoning(zoning)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}

	return NewDirectory(entries)
}
