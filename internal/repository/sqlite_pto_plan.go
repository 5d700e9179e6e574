package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
)

// SQLitePTOPlanRepo implements PTOPlanRepo using a SQLite database.
type SQLitePTOPlanRepo struct {
	db db.DBTX
}

// NewSQLitePTOPlanRepo creates a new SQLitePTOPlanRepo.
func NewSQLitePTOPlanRepo(conn db.DBTX) *SQLitePTOPlanRepo {
	return &SQLitePTOPlanRepo{db: conn}
}

const ptoPlanColumns = `id, pto_id, start_date, end_date, name, description, hours, status, custom_hours, created_at, updated_at`

func (r *SQLitePTOPlanRepo) Create(ctx context.Context, p *domain.PTOPlan) error {
	query := `INSERT INTO pto_plans (` + ptoPlanColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.PTOID,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.Name,
		p.Description,
		p.Hours.String(),
		string(p.Status),
		boolToInt(p.CustomHours),
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting pto plan: %w", err)
	}
	return nil
}

func (r *SQLitePTOPlanRepo) GetByID(ctx context.Context, id string) (*domain.PTOPlan, error) {
	query := `SELECT ` + ptoPlanColumns + ` FROM pto_plans WHERE id = ?`
	p, err := scanPTOPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "pto plan")
	}
	return p, nil
}

func (r *SQLitePTOPlanRepo) ListByPTO(ctx context.Context, ptoID string) ([]*domain.PTOPlan, error) {
	query := `SELECT ` + ptoPlanColumns + ` FROM pto_plans WHERE pto_id = ? ORDER BY start_date, name`
	rows, err := r.db.QueryContext(ctx, query, ptoID)
	if err != nil {
		return nil, fmt.Errorf("listing pto plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.PTOPlan
	for rows.Next() {
		p, err := scanPTOPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pto plan row: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pto plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePTOPlanRepo) Update(ctx context.Context, p *domain.PTOPlan) error {
	query := `UPDATE pto_plans SET start_date = ?, end_date = ?, name = ?, description = ?, hours = ?,
		status = ?, custom_hours = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.Name,
		p.Description,
		p.Hours.String(),
		string(p.Status),
		boolToInt(p.CustomHours),
		formatTimestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pto plan: %w", err)
	}
	return requireAffected(res, "pto plan")
}

func (r *SQLitePTOPlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pto_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pto plan: %w", err)
	}
	return requireAffected(res, "pto plan")
}

func scanPTOPlan(row rowScanner) (*domain.PTOPlan, error) {
	var p domain.PTOPlan
	var start, end, status, createdAt, updatedAt string
	var custom int

	if err := row.Scan(&p.ID, &p.PTOID, &start, &end, &p.Name, &p.Description, &p.Hours,
		&status, &custom, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Status = domain.PlanStatus(status)
	p.CustomHours = intToBool(custom)

	var err error
	if p.StartDate, err = time.Parse(dateLayout, start); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if p.EndDate, err = time.Parse(dateLayout, end); err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}
	if p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
