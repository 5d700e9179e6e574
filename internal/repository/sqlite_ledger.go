package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
)

// SQLiteLedgerRepo implements LedgerRepo using a SQLite database.
type SQLiteLedgerRepo struct {
	db db.DBTX
}

// NewSQLiteLedgerRepo creates a new SQLiteLedgerRepo.
func NewSQLiteLedgerRepo(conn db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{db: conn}
}

const ledgerColumns = `id, name, date, bank_balance, notes, created_at, updated_at`

func (r *SQLiteLedgerRepo) Create(ctx context.Context, l *domain.Ledger) error {
	query := `INSERT INTO ledgers (` + ledgerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Name,
		l.Date.Format(dateLayout),
		l.BankBalance.String(),
		l.Notes,
		formatTimestamp(l.CreatedAt),
		formatTimestamp(l.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting ledger: %w", err)
	}
	return nil
}

func (r *SQLiteLedgerRepo) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE id = ?`
	l, err := scanLedger(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "ledger")
	}
	return l, nil
}

func (r *SQLiteLedgerRepo) List(ctx context.Context) ([]*domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*domain.Ledger
	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledgers: %w", err)
	}
	return ledgers, nil
}

func (r *SQLiteLedgerRepo) Update(ctx context.Context, l *domain.Ledger) error {
	query := `UPDATE ledgers SET name = ?, date = ?, bank_balance = ?, notes = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.Name,
		l.Date.Format(dateLayout),
		l.BankBalance.String(),
		l.Notes,
		formatTimestamp(l.UpdatedAt),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating ledger: %w", err)
	}
	return requireAffected(res, "ledger")
}

func (r *SQLiteLedgerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ledgers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting ledger: %w", err)
	}
	return requireAffected(res, "ledger")
}

func scanLedger(row rowScanner) (*domain.Ledger, error) {
	var l domain.Ledger
	var date, createdAt, updatedAt string

	if err := row.Scan(&l.ID, &l.Name, &date, &l.BankBalance, &l.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if l.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if l.CreatedAt, l.UpdatedAt, err = parseTimestamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
