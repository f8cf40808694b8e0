package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// ErrUnknownReport marks a key outside the catalog; the menu treats it as a
// cancel, subcommands report it.
var ErrUnknownReport = errors.New("unknown report key")

type Report struct {
	Key   string
	Title string
	SQL   string
}

// Result is a rendered-ready report: column headers plus stringified rows
// in query order.
type Result struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Catalog is the fixed set of analytic queries the console exposes. The
// keys, titles and orderings are part of the console's contract.
func Catalog() []Report {
	return []Report{
		{
			Key:   "1",
			Title: "All customers (selection + ORDER BY)",
			SQL: `SELECT customer_id, full_name, email, phone, status
				FROM customer
				ORDER BY full_name`,
		},
		{
			Key:   "2",
			Title: "Rentals per branch (JOIN + GROUP BY)",
			SQL: `SELECT b.branch_id, b.name AS branch, COUNT(*) AS total_rentals
				FROM rental r
				JOIN branch b ON b.branch_id = r.branch_id
				GROUP BY b.branch_id, b.name
				ORDER BY total_rentals DESC`,
		},
		{
			Key:   "3",
			Title: "Equipment under maintenance (selection)",
			SQL: `SELECT equip_id, name AS equipment_name, brand, model, daily_rate, status
				FROM equipment
				WHERE status = 'Maintenance'
				ORDER BY brand, model`,
		},
		{
			Key:   "4",
			Title: "Copies per equipment (JOIN + GROUP BY)",
			SQL: `SELECT e.equip_id, e.name AS equipment_name, COUNT(*) AS copy_count
				FROM equip_copy ec
				JOIN equipment e ON e.equip_id = ec.equip_id
				GROUP BY e.equip_id, e.name
				ORDER BY copy_count DESC, equipment_name`,
		},
	}
}

// FindReport resolves a catalog key.
func FindReport(key string) (Report, error) {
	for _, rep := range Catalog() {
		if rep.Key == key {
			return rep, nil
		}
	}
	return Report{}, ErrUnknownReport
}

// RunReport executes one catalog query and returns headers plus rows. The
// read runs in its own transaction only to scope the search_path.
func (r *Runner) RunReport(ctx context.Context, key string) (*Result, error) {
	rep, err := FindReport(key)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.useSchema(ctx, tx); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, rep.SQL)
	if err != nil {
		return nil, fmt.Errorf("running report %s: %w", rep.Key, err)
	}
	defer rows.Close()

	res := &Result{Title: rep.Title}
	for _, fd := range rows.FieldDescriptions() {
		res.Headers = append(res.Headers, fd.Name)
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("reading report row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading report rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("finishing report: %w", err)
	}

	r.logger.Info("report executed", zap.String("key", rep.Key), zap.Int("rows", len(res.Rows)))
	return res, nil
}

// formatValue renders a database value for tabular display. Rates and other
// numerics print with two decimals, matching the original console output.
func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float32:
		return fmt.Sprintf("%.2f", x)
	case float64:
		return fmt.Sprintf("%.2f", x)
	case pgtype.Numeric:
		// NUMERIC columns decode to pgtype.Numeric, not float64
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return ""
		}
		return fmt.Sprintf("%.2f", f.Float64)
	case time.Time:
		return x.Format("2006-01-02")
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
