// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/ipay-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

// Colunas da tabela analítica, com os nomes originais em vietnamita
const (
	columnDate              = `"Ngày phát sinh"`
	columnYear              = `"Năm"`
	columnProductCode       = `"PROD_CODE"`
	columnCash              = `"Tiền thực thu"`
	columnNewPolicies       = `"Số đơn cấp mới"`
	columnRenewals          = `"Số đơn cấp tái tục"`
	columnExpectedRenewals  = `"Số đơn tái tục dự kiến"`
	columnActivePolicies    = `"Số đơn có hiệu lực"`
	columnSuspendedPolicies = `"Số đơn tạm ngưng"`
	columnCancellations     = `"Số đơn hủy webview"`
)

// pq.Error.Code para tabela inexistente
const undefinedTable = "42P01"

var (
	ErrInvalidTableName = errors.New("nome de tabela inválido")
	ErrTableNotFound    = errors.New("tabela de métricas não encontrada")
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type ProductMetricsRepository interface {
	// ListAll lê a tabela inteira, ordenada por data
	ListAll(ctx context.Context) ([]domain.DailyProductMetrics, error)
}

type productMetricsRepository struct {
	conn  postgres.Queryer
	table string
}

func NewProductMetricsRepository(conn postgres.Queryer, table string) (ProductMetricsRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, errors.Wrapf(ErrInvalidTableName, "%q", table)
	}

	return &productMetricsRepository{
		conn:  conn,
		table: table,
	}, nil
}

func (r *productMetricsRepository) ListAll(ctx context.Context) ([]domain.DailyProductMetrics, error) {
	queryBuilder := squirrel.
		Select(
			columnDate,
			columnYear,
			columnProductCode,
			columnCash,
			columnNewPolicies,
			columnRenewals,
			columnExpectedRenewals,
			columnActivePolicies,
			columnSuspendedPolicies,
			columnCancellations,
		).
		From(r.table).
		Where(squirrel.NotEq{columnDate: nil}).
		OrderBy(columnDate + " ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
			return nil, errors.Wrap(ErrTableNotFound, r.table)
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	metrics := make([]domain.DailyProductMetrics, 0)
	for rows.Next() {
		var (
			date        sql.NullTime
			year        sql.NullString
			productCode sql.NullString
			values      [7]sql.NullString
		)

		err := rows.Scan(
			&date,
			&year,
			&productCode,
			&values[0],
			&values[1],
			&values[2],
			&values[3],
			&values[4],
			&values[5],
			&values[6],
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha de métricas")
		}

		if !date.Valid {
			continue
		}

		metrics = append(metrics, domain.DailyProductMetrics{
			Date:              domain.DateOnly(date.Time),
			Year:              int(toNumber(year)),
			ProductCode:       strings.TrimSpace(productCode.String),
			Cash:              toNumber(values[0]),
			NewPolicies:       toNumber(values[1]),
			Renewals:          toNumber(values[2]),
			ExpectedRenewals:  toNumber(values[3]),
			ActivePolicies:    toNumber(values[4]),
			SuspendedPolicies: toNumber(values[5]),
			Cancellations:     toNumber(values[6]),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao percorrer as linhas")
	}

	return metrics, nil
}

// toNumber converte o texto lido da tabela; nulo ou inválido vira zero
func toNumber(value sql.NullString) float64 {
	if !value.Valid {
		return 0
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(value.String), 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}
	return number
}
