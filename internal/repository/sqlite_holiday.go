package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

const holidayColumns = `id, pto_id, date, name, hours, created_at`

func (r *SQLiteHolidayRepo) Create(ctx context.Context, h *domain.HolidayHours) error {
	query := `INSERT INTO holiday_hours (` + holidayColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.PTOID,
		h.Date.Format(dateLayout),
		h.Name,
		h.Hours.String(),
		formatTimestamp(h.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) GetByID(ctx context.Context, id string) (*domain.HolidayHours, error) {
	query := `SELECT ` + holidayColumns + ` FROM holiday_hours WHERE id = ?`
	h, err := scanHoliday(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "holiday")
	}
	return h, nil
}

func (r *SQLiteHolidayRepo) ListByPTO(ctx context.Context, ptoID string) ([]*domain.HolidayHours, error) {
	query := `SELECT ` + holidayColumns + ` FROM holiday_hours WHERE pto_id = ? ORDER BY date, name`
	rows, err := r.db.QueryContext(ctx, query, ptoID)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*domain.HolidayHours
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

func (r *SQLiteHolidayRepo) Update(ctx context.Context, h *domain.HolidayHours) error {
	query := `UPDATE holiday_hours SET date = ?, name = ?, hours = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, h.Date.Format(dateLayout), h.Name, h.Hours.String(), h.ID)
	if err != nil {
		return fmt.Errorf("updating holiday: %w", err)
	}
	return requireAffected(res, "holiday")
}

func (r *SQLiteHolidayRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holiday_hours WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting holiday: %w", err)
	}
	return requireAffected(res, "holiday")
}

func scanHoliday(row rowScanner) (*domain.HolidayHours, error) {
	var h domain.HolidayHours
	var date, createdAt string

	if err := row.Scan(&h.ID, &h.PTOID, &date, &h.Name, &h.Hours, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if h.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if h.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &h, nil
}
