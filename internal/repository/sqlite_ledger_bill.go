package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
)

// SQLiteLedgerBillRepo implements LedgerBillRepo using a SQLite database.
type SQLiteLedgerBillRepo struct {
	db db.DBTX
}

// NewSQLiteLedgerBillRepo creates a new SQLiteLedgerBillRepo.
func NewSQLiteLedgerBillRepo(conn db.DBTX) *SQLiteLedgerBillRepo {
	return &SQLiteLedgerBillRepo{db: conn}
}

const ledgerBillColumns = `lb.id, lb.ledger_id, lb.bill_id, lb.amount, lb.due_date, lb.is_paid, lb.notes, lb.created_at, lb.updated_at`

func (r *SQLiteLedgerBillRepo) Create(ctx context.Context, lb *domain.LedgerBill) error {
	query := `INSERT INTO ledger_bills (id, ledger_id, bill_id, amount, due_date, is_paid, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		lb.ID,
		lb.LedgerID,
		lb.BillID,
		lb.Amount.String(),
		nullableTimeToString(lb.DueDate, dateLayout),
		boolToInt(lb.IsPaid),
		lb.Notes,
		formatTimestamp(lb.CreatedAt),
		formatTimestamp(lb.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting ledger bill: %w", err)
	}
	return nil
}

func (r *SQLiteLedgerBillRepo) GetByID(ctx context.Context, id string) (*domain.LedgerBill, error) {
	query := `SELECT ` + ledgerBillColumns + ` FROM ledger_bills lb WHERE lb.id = ?`
	lb, err := scanLedgerBill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "ledger bill")
	}
	return lb, nil
}

// ListByLedger orders lines by due date with undated bills last.
func (r *SQLiteLedgerBillRepo) ListByLedger(ctx context.Context, ledgerID string) ([]domain.LedgerBillLine, error) {
	query := `SELECT ` + ledgerBillColumns + `, b.name
		FROM ledger_bills lb
		JOIN bills b ON b.id = lb.bill_id
		WHERE lb.ledger_id = ?
		ORDER BY lb.due_date IS NULL, lb.due_date, b.name COLLATE NOCASE`
	rows, err := r.db.QueryContext(ctx, query, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("listing ledger bills: %w", err)
	}
	defer rows.Close()

	var lines []domain.LedgerBillLine
	for rows.Next() {
		var line domain.LedgerBillLine
		lb, err := scanLedgerBill(rows, &line.BillName)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger bill row: %w", err)
		}
		line.LedgerBill = *lb
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger bills: %w", err)
	}
	return lines, nil
}

func (r *SQLiteLedgerBillRepo) ListAvailableBills(ctx context.Context, ledgerID string) ([]*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills
		WHERE id NOT IN (SELECT bill_id FROM ledger_bills WHERE ledger_id = ?)
		ORDER BY name COLLATE NOCASE, created_at`
	return queryBills(ctx, r.db, query, ledgerID)
}

func (r *SQLiteLedgerBillRepo) Update(ctx context.Context, lb *domain.LedgerBill) error {
	query := `UPDATE ledger_bills SET amount = ?, due_date = ?, is_paid = ?, notes = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		lb.Amount.String(),
		nullableTimeToString(lb.DueDate, dateLayout),
		boolToInt(lb.IsPaid),
		lb.Notes,
		formatTimestamp(lb.UpdatedAt),
		lb.ID,
	)
	if err != nil {
		return fmt.Errorf("updating ledger bill: %w", err)
	}
	return requireAffected(res, "ledger bill")
}

func (r *SQLiteLedgerBillRepo) SetPaid(ctx context.Context, id string, paid bool) error {
	query := `UPDATE ledger_bills SET is_paid = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(paid), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting ledger bill paid: %w", err)
	}
	return requireAffected(res, "ledger bill")
}

func (r *SQLiteLedgerBillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ledger_bills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting ledger bill: %w", err)
	}
	return requireAffected(res, "ledger bill")
}

// scanLedgerBill scans the ledger bill columns followed by any extra columns.
func scanLedgerBill(row rowScanner, extra ...any) (*domain.LedgerBill, error) {
	var lb domain.LedgerBill
	var dueDate sql.NullString
	var paid int
	var createdAt, updatedAt string

	dest := append([]any{
		&lb.ID, &lb.LedgerID, &lb.BillID, &lb.Amount, &dueDate, &paid, &lb.Notes, &createdAt, &updatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	lb.DueDate = parseNullableTime(dueDate, dateLayout)
	lb.IsPaid = intToBool(paid)

	var err error
	if lb.CreatedAt, lb.UpdatedAt, err = parseTimestamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &lb, nil
}
