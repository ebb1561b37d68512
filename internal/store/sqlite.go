// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"wheel-journal/internal/errors"
	"wheel-journal/internal/models"
)

// dateLayout is how calendar dates are stored; trades carry dates, not times.
const dateLayout = "2006-01-02"

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

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the trades table and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stock TEXT NOT NULL,
		strategy TEXT NOT NULL,
		strike_price REAL,
		premium REAL,
		quantity INTEGER NOT NULL,
		expiry DATE,
		trade_date DATE,
		status TEXT NOT NULL DEFAULT 'open',
		entry_price REAL,
		exit_price REAL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_trades_stock ON trades(stock);
	CREATE INDEX IF NOT EXISTS idx_trades_status ON trades(status);
	CREATE INDEX IF NOT EXISTS idx_trades_trade_date ON trades(trade_date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InsertTrade stores a new trade and returns it with the assigned id.
func (s *SQLiteStore) InsertTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO trades (stock, strategy, strike_price, premium, quantity, expiry, trade_date, status, entry_price, exit_price, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, models.NormalizeSymbol(trade.Stock), trade.Strategy,
		nullFloat(trade.StrikePrice), nullFloat(trade.Premium), trade.Quantity,
		nullDate(trade.Expiry), nullDate(trade.TradeDate), trade.Status,
		nullFloat(trade.EntryPrice), nullFloat(trade.ExitPrice), trade.Notes)
	if err != nil {
		return nil, errors.NewStoreError("insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errors.NewStoreError("insert", err)
	}
	return s.GetTrade(ctx, id)
}

// GetTrade retrieves a single trade by id.
func (s *SQLiteStore) GetTrade(ctx context.Context, id int64) (*models.Trade, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" FROM trades WHERE id = ?", id)
	trade, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTradeNotFound
	}
	if err != nil {
		return nil, errors.NewStoreError("get", err)
	}
	return trade, nil
}

// ListTrades retrieves trades matching the filter, newest trade date first.
func (s *SQLiteStore) ListTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error) {
	query := selectColumns + " FROM trades WHERE 1=1"
	args := []interface{}{}

	if filter.Stock != "" {
		query += " AND stock = ?"
		args = append(args, models.NormalizeSymbol(filter.Stock))
	}
	if filter.Strategy != "" {
		query += " AND strategy = ?"
		args = append(args, filter.Strategy)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if !filter.StartDate.IsZero() {
		query += " AND trade_date >= ?"
		args = append(args, filter.StartDate.Format(dateLayout))
	}
	if !filter.EndDate.IsZero() {
		query += " AND trade_date <= ?"
		args = append(args, filter.EndDate.Format(dateLayout))
	}

	query += " ORDER BY trade_date DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("list", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, errors.NewStoreError("list", err)
		}
		trades = append(trades, *trade)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("list", err)
	}
	return trades, nil
}

// UpdateTrade replaces every mutable field of the trade identified by its id.
func (s *SQLiteStore) UpdateTrade(ctx context.Context, trade *models.Trade) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE trades
		SET stock = ?, strategy = ?, strike_price = ?, premium = ?, quantity = ?,
		    expiry = ?, trade_date = ?, status = ?, entry_price = ?, exit_price = ?,
		    notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, models.NormalizeSymbol(trade.Stock), trade.Strategy,
		nullFloat(trade.StrikePrice), nullFloat(trade.Premium), trade.Quantity,
		nullDate(trade.Expiry), nullDate(trade.TradeDate), trade.Status,
		nullFloat(trade.EntryPrice), nullFloat(trade.ExitPrice), trade.Notes, trade.ID)
	if err != nil {
		return errors.NewStoreError("update", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrTradeNotFound
	}
	return nil
}

// DeleteTrade removes a trade by id.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return errors.NewStoreError("delete", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrTradeNotFound
	}
	return nil
}

const selectColumns = `SELECT id, stock, strategy, strike_price, premium, quantity, expiry, trade_date, status, entry_price, exit_price, COALESCE(notes, '')`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanTrade maps a stored row to the canonical trade shape. NULL columns
// become nil pointers, never zero values: the engine distinguishes absent
// from 0.
func scanTrade(row scanner) (*models.Trade, error) {
	var t models.Trade
	var strike, premium, entry, exit sql.NullFloat64
	var expiry, tradeDate sql.NullString

	err := row.Scan(&t.ID, &t.Stock, &t.Strategy, &strike, &premium, &t.Quantity,
		&expiry, &tradeDate, &t.Status, &entry, &exit, &t.Notes)
	if err != nil {
		return nil, err
	}

	t.StrikePrice = floatPtr(strike)
	t.Premium = floatPtr(premium)
	t.EntryPrice = floatPtr(entry)
	t.ExitPrice = floatPtr(exit)
	t.Expiry = datePtr(expiry)
	t.TradeDate = datePtr(tradeDate)
	return &t, nil
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullDate(p *time.Time) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: p.Format(dateLayout), Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// datePtr parses a stored date. An unparseable date degrades to absent, which
// excludes the trade from windowed views but keeps it in aggregates.
func datePtr(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, v.String, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
