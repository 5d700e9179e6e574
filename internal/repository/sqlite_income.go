package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
)

// SQLiteIncomeRepo implements IncomeRepo using a SQLite database.
type SQLiteIncomeRepo struct {
	db db.DBTX
}

// NewSQLiteIncomeRepo creates a new SQLiteIncomeRepo.
func NewSQLiteIncomeRepo(conn db.DBTX) *SQLiteIncomeRepo {
	return &SQLiteIncomeRepo{db: conn}
}

const incomeColumns = `id, date, amount, ledger_id, notes, created_at, updated_at`

func (r *SQLiteIncomeRepo) Create(ctx context.Context, i *domain.Income) error {
	query := `INSERT INTO incomes (` + incomeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.Date.Format(dateLayout),
		i.Amount.String(),
		nullableStringToValue(i.LedgerID),
		i.Notes,
		formatTimestamp(i.CreatedAt),
		formatTimestamp(i.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting income: %w", err)
	}
	return nil
}

func (r *SQLiteIncomeRepo) GetByID(ctx context.Context, id string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE id = ?`
	i, err := scanIncome(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "income")
	}
	return i, nil
}

func (r *SQLiteIncomeRepo) List(ctx context.Context) ([]*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes ORDER BY date DESC, created_at DESC`
	return r.query(ctx, query)
}

func (r *SQLiteIncomeRepo) ListByLedger(ctx context.Context, ledgerID string) ([]*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE ledger_id = ? ORDER BY date, created_at`
	return r.query(ctx, query, ledgerID)
}

func (r *SQLiteIncomeRepo) ListUnassigned(ctx context.Context, from, to time.Time) ([]*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes
		WHERE ledger_id IS NULL AND date >= ? AND date <= ?
		ORDER BY date, created_at`
	return r.query(ctx, query, from.Format(dateLayout), to.Format(dateLayout))
}

func (r *SQLiteIncomeRepo) Update(ctx context.Context, i *domain.Income) error {
	query := `UPDATE incomes SET date = ?, amount = ?, ledger_id = ?, notes = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		i.Date.Format(dateLayout),
		i.Amount.String(),
		nullableStringToValue(i.LedgerID),
		i.Notes,
		formatTimestamp(i.UpdatedAt),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating income: %w", err)
	}
	return requireAffected(res, "income")
}

func (r *SQLiteIncomeRepo) SetLedger(ctx context.Context, id string, ledgerID *string) error {
	query := `UPDATE incomes SET ledger_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nullableStringToValue(ledgerID), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting income ledger: %w", err)
	}
	return requireAffected(res, "income")
}

func (r *SQLiteIncomeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}
	return requireAffected(res, "income")
}

func (r *SQLiteIncomeRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Income, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var incomes []*domain.Income
	for rows.Next() {
		i, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income row: %w", err)
		}
		incomes = append(incomes, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating incomes: %w", err)
	}
	return incomes, nil
}

func scanIncome(row rowScanner) (*domain.Income, error) {
	var i domain.Income
	var date, createdAt, updatedAt string
	var ledgerID sql.NullString

	if err := row.Scan(&i.ID, &date, &i.Amount, &ledgerID, &i.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if i.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	i.LedgerID = nullStringPtr(ledgerID)
	if i.CreatedAt, i.UpdatedAt, err = parseTimestamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}
