package domain

import "strings"

type PlanStatus string

const (
	PlanPlanned   PlanStatus = "Planned"
	PlanRequested PlanStatus = "Requested"
	PlanApproved  PlanStatus = "Approved"
	PlanCompleted PlanStatus = "Completed"
	PlanCancelled PlanStatus = "Cancelled"
)

// PlanStatuses lists every status in display order.
var PlanStatuses = []PlanStatus{
	PlanPlanned,
	PlanRequested,
	PlanApproved,
	PlanCompleted,
	PlanCancelled,
}

// ParsePlanStatus matches s case-insensitively against the known statuses.
func ParsePlanStatus(s string) (PlanStatus, error) {
	for _, st := range PlanStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", validationf("unknown plan status %q", s)
}

// CountsAsPlanned reports whether hours in this status are reserved but not yet taken.
func (s PlanStatus) CountsAsPlanned() bool {
	return s == PlanPlanned || s == PlanRequested || s == PlanApproved
}
