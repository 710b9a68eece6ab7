package postgre

import (
	"context"

	"github.com/shopspring/decimal"

	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline/repository"
)

// SaveReportRows - Persist the consolidated report for a job. seq preserves
// report order; rewriting a job's report replaces the previous rows.
func (r *implRepository) SaveReportRows(ctx context.Context, opts repository.SaveReportRowsOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.SaveReportRows: Begin failed: %v", err)
		return repository.ErrRowsWriteFailed
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM report_rows WHERE job_id = $1`, opts.JobID); err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.SaveReportRows: Delete failed: %v", err)
		return repository.ErrRowsWriteFailed
	}

	const q = `
		INSERT INTO report_rows (job_id, seq, product, region, sales, amount_usd, amount_eur)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, row := range opts.Rows {
		_, err := tx.ExecContext(ctx, q,
			opts.JobID, i, row.Product, row.Region, row.Sales,
			row.AmountUSD.StringFixed(2), row.AmountEUR.StringFixed(2),
		)
		if err != nil {
			r.l.Errorf(ctx, "pipeline.repository.postgre.SaveReportRows: Insert failed at seq %d: %v", i, err)
			return repository.ErrRowsWriteFailed
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.SaveReportRows: Commit failed: %v", err)
		return repository.ErrRowsWriteFailed
	}

	return nil
}

// GetReportRows - Read back a job's report in stored order.
func (r *implRepository) GetReportRows(ctx context.Context, jobID string) ([]model.ReportRow, error) {
	const q = `
		SELECT product, region, sales, amount_usd, amount_eur
		FROM report_rows
		WHERE job_id = $1
		ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, q, jobID)
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.GetReportRows: Query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var result []model.ReportRow
	for rows.Next() {
		var (
			row      model.ReportRow
			usd, eur string
		)
		if err := rows.Scan(&row.Product, &row.Region, &row.Sales, &usd, &eur); err != nil {
			r.l.Errorf(ctx, "pipeline.repository.postgre.GetReportRows: Scan failed: %v", err)
			return nil, err
		}
		if row.AmountUSD, err = decimal.NewFromString(usd); err != nil {
			return nil, err
		}
		if row.AmountEUR, err = decimal.NewFromString(eur); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
