package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
)

// SQLiteStore persists bars and review snapshots to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block review writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bars (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol    TEXT NOT NULL,
			timeframe TEXT NOT NULL,
			ts        INTEGER NOT NULL,
			open      REAL,
			high      REAL,
			low       REAL,
			close     REAL,
			volume    REAL,
			amount    REAL,
			UNIQUE(symbol, timeframe, ts)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_symbol_ts ON bars(symbol, timeframe, ts)`,

		`CREATE TABLE IF NOT EXISTS review_snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT NOT NULL,
			price         REAL,
			score         INTEGER,
			trend         TEXT,
			buy_count     INTEGER,
			sell_count    INTEGER,
			pattern_days  INTEGER,
			similar_count INTEGER,
			win_rate      REAL,
			avg_return    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_review_ts ON review_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_review_symbol ON review_snapshots(symbol)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveBars upserts a bar batch. Existing (symbol, timeframe, ts) rows are
// replaced so re-ingestion after a data correction is safe.
func (s *SQLiteStore) SaveBars(symbol, timeframe string, bars []model.Bar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save bars: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO bars
		(symbol, timeframe, ts, open, high, low, close, volume, amount)
		VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare save bars: %w", err)
	}
	defer stmt.Close()

	for _, b := range bars {
		if _, err := stmt.Exec(symbol, timeframe, b.Time.Unix(),
			b.Open, b.High, b.Low, b.Close, b.Volume, b.Amount); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert bar %s: %w", b.Time.Format("2006-01-02"), err)
		}
	}
	return tx.Commit()
}

// Bars returns the most recent `limit` bars, ascending.
func (s *SQLiteStore) Bars(symbol, timeframe string, limit int) ([]model.Bar, error) {
	rows, err := s.db.Query(`SELECT ts, open, high, low, close, volume, amount
		FROM (SELECT * FROM bars WHERE symbol = ? AND timeframe = ? ORDER BY ts DESC LIMIT ?)
		ORDER BY ts ASC`, symbol, timeframe, limit)
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()
	return scanBars(rows)
}

// BarsRange returns bars within [from, to], ascending.
func (s *SQLiteStore) BarsRange(symbol, timeframe string, from, to time.Time) ([]model.Bar, error) {
	rows, err := s.db.Query(`SELECT ts, open, high, low, close, volume, amount
		FROM bars WHERE symbol = ? AND timeframe = ? AND ts BETWEEN ? AND ?
		ORDER BY ts ASC`, symbol, timeframe, from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("query bars range: %w", err)
	}
	defer rows.Close()
	return scanBars(rows)
}

// Closes returns the most recent `limit` closing prices, ascending.
func (s *SQLiteStore) Closes(symbol, timeframe string, limit int) ([]float64, error) {
	bars, err := s.Bars(symbol, timeframe, limit)
	if err != nil {
		return nil, err
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes, nil
}

func scanBars(rows *sql.Rows) ([]model.Bar, error) {
	var bars []model.Bar
	for rows.Next() {
		var ts int64
		var b model.Bar
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume, &b.Amount); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		b.Time = time.Unix(ts, 0)
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// RecordReview persists one symbol's review snapshot.
func (s *SQLiteStore) RecordReview(snap *ReviewSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO review_snapshots
		(timestamp, symbol, price, score, trend, buy_count, sell_count,
		 pattern_days, similar_count, win_rate, avg_return)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol, snap.Price, snap.Score, snap.Trend,
		snap.BuyCount, snap.SellCount, snap.PatternDays, snap.SimilarCount,
		nullable(snap.WinRate), nullable(snap.AvgReturn),
	)
	return err
}

// nullable maps an absent statistic to SQL NULL rather than 0.
func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
