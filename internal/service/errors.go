package service

import "errors"

var (
	// ErrCustomHours is returned when recalculating a plan whose hours were entered by hand.
	ErrCustomHours = errors.New("plan has custom hours")

	// ErrBillAlreadyOnLedger is returned when adding a bill the ledger already holds.
	ErrBillAlreadyOnLedger = errors.New("bill is already on this ledger")

	// ErrIncomeAssigned is returned when assigning an income that belongs to a ledger.
	ErrIncomeAssigned = errors.New("income is already assigned to a ledger")

	// ErrIncomeOutsideMonth is returned when an income's date is not in the ledger's month.
	ErrIncomeOutsideMonth = errors.New("income date is outside the ledger's month")

	// ErrNoPreviousYear is returned when copying holidays with no prior PTO year on record.
	ErrNoPreviousYear = errors.New("no PTO record for the previous year")

	// ErrOutsideYear is returned when a holiday date falls outside its PTO year.
	ErrOutsideYear = errors.New("date is outside the PTO year")
)
