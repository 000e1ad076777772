// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"option-strategist/internal/scan"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
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
	-- Screener scan results
	CREATE TABLE IF NOT EXISTS scan_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ticker TEXT NOT NULL,
		company_name TEXT,
		price REAL NOT NULL,
		price_change REAL,
		iv_rank REAL,
		iv_percentile REAL,
		strike REAL,
		moneyness REAL,
		exp_date TEXT,
		days_to_exp REAL,
		total_opt_vol REAL,
		prob_max_profit REAL,
		max_profit REAL,
		max_loss REAL,
		return_percent REAL,
		scraped_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scan_records_ticker ON scan_records(ticker);
	CREATE INDEX IF NOT EXISTS idx_scan_records_scraped ON scan_records(scraped_at);

	-- Strategy P&L evaluations
	CREATE TABLE IF NOT EXISTS evaluations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		ticker TEXT,
		strategy TEXT NOT NULL,
		spot REAL NOT NULL,
		net_premium REAL NOT NULL,
		max_profit REAL NOT NULL,
		max_loss REAL NOT NULL,
		breakevens TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_evaluations_ticker ON evaluations(ticker);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveScanRecords inserts screener rows in a single transaction.
func (s *SQLiteStore) SaveScanRecords(ctx context.Context, records []scan.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scan_records (
			ticker, company_name, price, price_change, iv_rank, iv_percentile,
			strike, moneyness, exp_date, days_to_exp, total_opt_vol,
			prob_max_profit, max_profit, max_loss, return_percent, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		scrapedAt := r.ScrapedAt
		if scrapedAt.IsZero() {
			scrapedAt = time.Now().UTC()
		}
		_, err := stmt.ExecContext(ctx,
			r.Ticker, r.CompanyName, float64(r.Price), float64(r.PriceChange),
			float64(r.IVRank), float64(r.IVPercentile), float64(r.Strike),
			float64(r.Moneyness), r.ExpDate, float64(r.DaysToExp),
			float64(r.TotalOptVol), float64(r.ProbMaxProfit),
			float64(r.MaxProfit), float64(r.MaxLoss), float64(r.ReturnPercent),
			scrapedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting scan record for %s: %w", r.Ticker, err)
		}
	}

	return tx.Commit()
}

// GetScanRecords returns screener rows matching the filter, newest first.
func (s *SQLiteStore) GetScanRecords(ctx context.Context, filter ScanFilter) ([]scan.Record, error) {
	query := `
		SELECT ticker, company_name, price, price_change, iv_rank, iv_percentile,
		       strike, moneyness, exp_date, days_to_exp, total_opt_vol,
		       prob_max_profit, max_profit, max_loss, return_percent, scraped_at
		FROM scan_records`

	var conditions []string
	var args []interface{}

	if filter.Ticker != "" {
		conditions = append(conditions, "ticker = ?")
		args = append(args, filter.Ticker)
	}
	if !filter.Since.IsZero() {
		conditions = append(conditions, "scraped_at >= ?")
		args = append(args, filter.Since)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY scraped_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying scan records: %w", err)
	}
	defer rows.Close()

	var records []scan.Record
	for rows.Next() {
		var r scan.Record
		err := rows.Scan(
			&r.Ticker, &r.CompanyName, &r.Price, &r.PriceChange,
			&r.IVRank, &r.IVPercentile, &r.Strike, &r.Moneyness,
			&r.ExpDate, &r.DaysToExp, &r.TotalOptVol,
			&r.ProbMaxProfit, &r.MaxProfit, &r.MaxLoss, &r.ReturnPercent,
			&r.ScrapedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// SaveEvaluation persists a strategy analysis snapshot.
func (s *SQLiteStore) SaveEvaluation(ctx context.Context, eval *Evaluation) error {
	breakevens, err := json.Marshal(eval.Breakevens)
	if err != nil {
		return fmt.Errorf("marshaling breakevens: %w", err)
	}

	if eval.Timestamp.IsZero() {
		eval.Timestamp = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations (timestamp, ticker, strategy, spot, net_premium,
		                         max_profit, max_loss, breakevens)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		eval.Timestamp, eval.Ticker, eval.Strategy, eval.Spot,
		eval.NetPremium, eval.MaxProfit, eval.MaxLoss, string(breakevens),
	)
	if err != nil {
		return fmt.Errorf("inserting evaluation: %w", err)
	}

	eval.ID, _ = res.LastInsertId()
	return nil
}

// GetEvaluations returns saved evaluations, newest first.
func (s *SQLiteStore) GetEvaluations(ctx context.Context, limit int) ([]Evaluation, error) {
	query := `
		SELECT id, timestamp, ticker, strategy, spot, net_premium,
		       max_profit, max_loss, breakevens
		FROM evaluations
		ORDER BY timestamp DESC`

	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying evaluations: %w", err)
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		var e Evaluation
		var breakevens string
		err := rows.Scan(&e.ID, &e.Timestamp, &e.Ticker, &e.Strategy, &e.Spot,
			&e.NetPremium, &e.MaxProfit, &e.MaxLoss, &breakevens)
		if err != nil {
			return nil, fmt.Errorf("scanning evaluation: %w", err)
		}
		if err := json.Unmarshal([]byte(breakevens), &e.Breakevens); err != nil {
			e.Breakevens = nil
		}
		evals = append(evals, e)
	}

	return evals, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
