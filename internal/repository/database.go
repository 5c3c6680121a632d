package repository

import (
	"context"
	"errors"
	"fmt"

	"stratledger/types"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Global error declarations.
var (
	ErrRunNotFound = errors.New("backtest run not found in datasource")
	ErrNoPriceBars = errors.New("no price bars found for run")
)

type runsRepository interface {
	GetRun(ctx context.Context, id string) (types.BacktestRun, error)
}
type tradesRepository interface {
	GetTrades(ctx context.Context, runID string) ([]types.Trade, error)
}
type priceBarsRepository interface {
	GetPriceBars(ctx context.Context, runID string) ([]types.PriceBar, error)
}

// Database struct that holds the database connection and queries.
type Database struct {
	runs   runsRepository
	trades tradesRepository
	bars   priceBarsRepository
	conn   *pgxpool.Pool
}

// NewDatabase creates a new Database instance and verifies connectivity.
func NewDatabase(dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return Database{}, fmt.Errorf("parse config: %w", err)
	}
	// Register shopspring decimal
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return Database{}, err
	}
	// Ensure the connection is established.
	if err := conn.Ping(context.Background()); err != nil {
		return Database{}, err
	}

	q := &queries{pool: conn}
	return Database{
		runs:   q,
		trades: q,
		bars:   q,
		conn:   conn,
	}, nil
}

func (db *Database) Close() {
	if db.conn != nil {
		db.conn.Close()
	}
}
