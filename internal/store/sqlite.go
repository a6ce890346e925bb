package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements ResultStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based result store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pricing_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		trade_id TEXT NOT NULL,
		pair TEXT NOT NULL,
		barrier_type TEXT NOT NULL,
		npv REAL NOT NULL,
		npv_currency TEXT NOT NULL,
		notional REAL NOT NULL,
		notional_currency TEXT NOT NULL,
		maturity DATETIME NOT NULL,
		priced_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_results_trade ON pricing_results(trade_id);
	CREATE INDEX IF NOT EXISTS idx_results_pair ON pricing_results(pair);
	CREATE INDEX IF NOT EXISTS idx_results_priced_at ON pricing_results(priced_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveResult persists one pricing result.
func (s *SQLiteStore) SaveResult(ctx context.Context, record *PricingRecord) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO pricing_results
			(trade_id, pair, barrier_type, npv, npv_currency, notional, notional_currency, maturity, priced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.TradeID, record.Pair, record.BarrierType, record.NPV, record.NPVCurrency,
		record.Notional, record.NotionalCurrency, record.Maturity, record.PricedAt)
	if err != nil {
		return fmt.Errorf("failed to save pricing result: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}
	return nil
}

// GetResults returns persisted results matching the filter, newest first.
func (s *SQLiteStore) GetResults(ctx context.Context, filter ResultFilter) ([]PricingRecord, error) {
	query := `SELECT id, trade_id, pair, barrier_type, npv, npv_currency, notional, notional_currency, maturity, priced_at
		FROM pricing_results`
	var conditions []string
	var args []interface{}

	if filter.TradeID != "" {
		conditions = append(conditions, "trade_id = ?")
		args = append(args, filter.TradeID)
	}
	if filter.Pair != "" {
		conditions = append(conditions, "pair = ?")
		args = append(args, filter.Pair)
	}
	if !filter.Since.IsZero() {
		conditions = append(conditions, "priced_at >= ?")
		args = append(args, filter.Since)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY priced_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing results: %w", err)
	}
	defer rows.Close()

	var records []PricingRecord
	for rows.Next() {
		var r PricingRecord
		if err := rows.Scan(&r.ID, &r.TradeID, &r.Pair, &r.BarrierType, &r.NPV, &r.NPVCurrency,
			&r.Notional, &r.NotionalCurrency, &r.Maturity, &r.PricedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pricing result: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
