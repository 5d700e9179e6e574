package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPTOService_Create_RolloverCarriesRemaining(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := r.ptoService()

	prev := &domain.PTO{Year: 2023, AvailableHours: testutil.D("80")}
	require.NoError(t, svc.Create(ctx, prev))
	require.NoError(t, r.plans.Create(ctx, testutil.NewTestPlan(prev.ID, "Used", testutil.Date(2023, 3, 6), testutil.Date(2023, 3, 10), "40",
		testutil.WithPlanStatus(domain.PlanCompleted))))
	require.NoError(t, r.plans.Create(ctx, testutil.NewTestPlan(prev.ID, "Dropped", testutil.Date(2023, 6, 5), testutil.Date(2023, 6, 9), "40",
		testutil.WithPlanStatus(domain.PlanCancelled))))

	next := &domain.PTO{Year: 2024, AvailableHours: testutil.D("120"), RolloverHours: true}
	require.NoError(t, svc.Create(ctx, next))
	assert.True(t, next.PrevYearHours.Equal(testutil.D("40")), "got %s", next.PrevYearHours)

	fetched, err := svc.GetByYear(ctx, 2024)
	require.NoError(t, err)
	assert.True(t, fetched.PrevYearHours.Equal(testutil.D("40")))
}

func TestPTOService_Create_RolloverFloorsAtZero(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := r.ptoService()

	prev := &domain.PTO{Year: 2023, AvailableHours: testutil.D("8")}
	require.NoError(t, svc.Create(ctx, prev))
	require.NoError(t, r.plans.Create(ctx, testutil.NewTestPlan(prev.ID, "Over", testutil.Date(2023, 3, 6), testutil.Date(2023, 3, 7), "16")))

	next := &domain.PTO{Year: 2024, AvailableHours: testutil.D("80"), RolloverHours: true}
	require.NoError(t, svc.Create(ctx, next))
	assert.True(t, next.PrevYearHours.IsZero())
}

func TestPTOService_Create_RolloverWithoutPreviousKeepsInput(t *testing.T) {
	r := setupRepos(t)
	svc := r.ptoService()

	p := &domain.PTO{Year: 2024, AvailableHours: testutil.D("80"), PrevYearHours: testutil.D("5"), RolloverHours: true}
	require.NoError(t, svc.Create(context.Background(), p))
	assert.True(t, p.PrevYearHours.Equal(testutil.D("5")))
}

func TestPTOService_DetailAndList(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := r.ptoService()

	p := &domain.PTO{Year: 2024, AvailableHours: testutil.D("100"), PrevYearHours: testutil.D("10"), RolloverHours: true}
	require.NoError(t, svc.Create(ctx, p))
	require.NoError(t, r.holidays.Create(ctx, testutil.NewTestHoliday(p.ID, "New Year", testutil.Date(2024, 1, 1), "8")))
	require.NoError(t, r.plans.Create(ctx, testutil.NewTestPlan(p.ID, "A", testutil.Date(2024, 2, 5), testutil.Date(2024, 2, 6), "16",
		testutil.WithPlanStatus(domain.PlanRequested))))
	require.NoError(t, r.plans.Create(ctx, testutil.NewTestPlan(p.ID, "B", testutil.Date(2024, 1, 8), testutil.Date(2024, 1, 8), "8",
		testutil.WithPlanStatus(domain.PlanCompleted))))

	detail, err := svc.Detail(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Plans, 2)
	assert.Len(t, detail.Holidays, 1)
	assert.True(t, detail.Summary.HoursPlanned.Equal(testutil.D("16")))
	assert.True(t, detail.Summary.HoursUsed.Equal(testutil.D("8")))
	assert.True(t, detail.Summary.HoursRemaining.Equal(testutil.D("86")))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Summary.HoursRemaining.Equal(testutil.D("86")))
}

func TestPTOService_Create_Validates(t *testing.T) {
	r := setupRepos(t)
	err := r.ptoService().Create(context.Background(), &domain.PTO{Year: 2024, AvailableHours: testutil.D("-1")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
