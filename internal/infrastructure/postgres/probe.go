package postgres

import (
	"context"
	"database/sql"
)

// Probe checks storage liveness with a trivial round-trip query.
type Probe struct {
	DB *sql.DB
}

func NewProbe(db *sql.DB) *Probe {
	return &Probe{DB: db}
}

func (p *Probe) Name() string { return "database" }

func (p *Probe) Check(ctx context.Context) error {
	var one int
	return p.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}
