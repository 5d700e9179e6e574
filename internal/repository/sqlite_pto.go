package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
)

// SQLitePTORepo implements PTORepo using a SQLite database.
type SQLitePTORepo struct {
	db db.DBTX
}

// NewSQLitePTORepo creates a new SQLitePTORepo.
func NewSQLitePTORepo(conn db.DBTX) *SQLitePTORepo {
	return &SQLitePTORepo{db: conn}
}

const ptoColumns = `id, year, available_hours, prev_year_hours, rollover_hours, created_at, updated_at`

func (r *SQLitePTORepo) Create(ctx context.Context, p *domain.PTO) error {
	query := `INSERT INTO ptos (` + ptoColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Year,
		p.AvailableHours.String(),
		p.PrevYearHours.String(),
		boolToInt(p.RolloverHours),
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting pto: %w", err)
	}
	return nil
}

func (r *SQLitePTORepo) GetByID(ctx context.Context, id string) (*domain.PTO, error) {
	query := `SELECT ` + ptoColumns + ` FROM ptos WHERE id = ?`
	p, err := scanPTO(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "pto")
	}
	return p, nil
}

func (r *SQLitePTORepo) GetByYear(ctx context.Context, year int) (*domain.PTO, error) {
	query := `SELECT ` + ptoColumns + ` FROM ptos WHERE year = ?`
	p, err := scanPTO(r.db.QueryRowContext(ctx, query, year))
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("pto for %d", year))
	}
	return p, nil
}

func (r *SQLitePTORepo) List(ctx context.Context) ([]*domain.PTO, error) {
	query := `SELECT ` + ptoColumns + ` FROM ptos ORDER BY year DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing ptos: %w", err)
	}
	defer rows.Close()

	var ptos []*domain.PTO
	for rows.Next() {
		p, err := scanPTO(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pto row: %w", err)
		}
		ptos = append(ptos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ptos: %w", err)
	}
	return ptos, nil
}

func (r *SQLitePTORepo) Update(ctx context.Context, p *domain.PTO) error {
	query := `UPDATE ptos SET year = ?, available_hours = ?, prev_year_hours = ?, rollover_hours = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Year,
		p.AvailableHours.String(),
		p.PrevYearHours.String(),
		boolToInt(p.RolloverHours),
		formatTimestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pto: %w", err)
	}
	return requireAffected(res, "pto")
}

func (r *SQLitePTORepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ptos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pto: %w", err)
	}
	return requireAffected(res, "pto")
}

func scanPTO(row rowScanner) (*domain.PTO, error) {
	var p domain.PTO
	var rollover int
	var createdAt, updatedAt string

	if err := row.Scan(&p.ID, &p.Year, &p.AvailableHours, &p.PrevYearHours, &rollover, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.RolloverHours = intToBool(rollover)

	var err error
	if p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
