package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios de leitura
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	PingContext(ctx context.Context) error
}
