package postgre

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline/repository"
)

// GetRegionalData - Fetch every regional record for the given products.
// Matching is case-insensitive; result order is not significant.
func (r *implRepository) GetRegionalData(ctx context.Context, opts repository.GetRegionalDataOptions) ([]model.RegionalRecord, error) {
	if len(opts.Products) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(opts.Products))
	for i, p := range opts.Products {
		lowered[i] = strings.ToLower(p)
	}

	const q = `
		SELECT region, product, sales, amount
		FROM regional_data
		WHERE LOWER(product) = ANY($1)`

	rows, err := r.db.QueryContext(ctx, q, pq.Array(lowered))
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.GetRegionalData: Query failed: %v", err)
		return nil, repository.ErrRegionalLookup
	}
	defer rows.Close()

	var records []model.RegionalRecord
	for rows.Next() {
		var (
			rec    model.RegionalRecord
			amount string
		)
		if err := rows.Scan(&rec.Region, &rec.Product, &rec.Sales, &amount); err != nil {
			r.l.Errorf(ctx, "pipeline.repository.postgre.GetRegionalData: Scan failed: %v", err)
			return nil, repository.ErrRegionalLookup
		}
		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			r.l.Errorf(ctx, "pipeline.repository.postgre.GetRegionalData: Bad amount %q: %v", amount, err)
			return nil, repository.ErrRegionalLookup
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.GetRegionalData: Rows failed: %v", err)
		return nil, repository.ErrRegionalLookup
	}

	return records, nil
}
