package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
)

// SQLiteBillRepo implements BillRepo using a SQLite database.
type SQLiteBillRepo struct {
	db db.DBTX
}

// NewSQLiteBillRepo creates a new SQLiteBillRepo.
func NewSQLiteBillRepo(conn db.DBTX) *SQLiteBillRepo {
	return &SQLiteBillRepo{db: conn}
}

const billColumns = `id, name, amount, due_day, is_auto_pay, notes, created_at, updated_at`

func (r *SQLiteBillRepo) Create(ctx context.Context, b *domain.Bill) error {
	query := `INSERT INTO bills (` + billColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.Amount.String(),
		nullableIntToValue(b.DueDay),
		boolToInt(b.IsAutoPay),
		b.Notes,
		formatTimestamp(b.CreatedAt),
		formatTimestamp(b.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting bill: %w", err)
	}
	return nil
}

func (r *SQLiteBillRepo) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = ?`
	b, err := scanBill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "bill")
	}
	return b, nil
}

func (r *SQLiteBillRepo) List(ctx context.Context) ([]*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills ORDER BY name COLLATE NOCASE, created_at`
	return queryBills(ctx, r.db, query)
}

func (r *SQLiteBillRepo) Update(ctx context.Context, b *domain.Bill) error {
	query := `UPDATE bills SET name = ?, amount = ?, due_day = ?, is_auto_pay = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Name,
		b.Amount.String(),
		nullableIntToValue(b.DueDay),
		boolToInt(b.IsAutoPay),
		b.Notes,
		formatTimestamp(b.UpdatedAt),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating bill: %w", err)
	}
	return requireAffected(res, "bill")
}

func (r *SQLiteBillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}
	return requireAffected(res, "bill")
}

func queryBills(ctx context.Context, conn db.DBTX, query string, args ...any) ([]*domain.Bill, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var bills []*domain.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill row: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bills: %w", err)
	}
	return bills, nil
}

func scanBill(row rowScanner) (*domain.Bill, error) {
	var b domain.Bill
	var dueDay sql.NullInt64
	var autoPay int
	var createdAt, updatedAt string

	if err := row.Scan(&b.ID, &b.Name, &b.Amount, &dueDay, &autoPay, &b.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	b.DueDay = nullIntPtr(dueDay)
	b.IsAutoPay = intToBool(autoPay)

	var err error
	if b.CreatedAt, b.UpdatedAt, err = parseTimestamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
