package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2025-06-30"))
	assert.NoError(t, validateOptionalDate("06/30/2025"))
	assert.Error(t, validateOptionalDate("30/06/2025"))

	assert.EqualError(t, validateRequiredDate("  "), "date is required")
	assert.NoError(t, validateRequiredDate("2025-06-30"))
}

func TestValidateOptionalHours(t *testing.T) {
	assert.NoError(t, validateOptionalHours(""))
	assert.NoError(t, validateOptionalHours("7.5"))
	assert.EqualError(t, validateOptionalHours("-1"), "hours must not be negative")
	assert.Error(t, validateOptionalHours("eight"))
}

func TestValidateRequired(t *testing.T) {
	v := validateRequired("name")
	assert.EqualError(t, v(""), "name is required")
	assert.NoError(t, v("Beach week"))
}

func TestPlanStatusOptions_FollowDisplayOrder(t *testing.T) {
	opts := planStatusOptions()
	require.Len(t, opts, len(domain.PlanStatuses))
	for i, st := range domain.PlanStatuses {
		assert.Equal(t, string(st), opts[i].Value)
	}
}

func TestPTOYearOptions_ShowRemainingHours(t *testing.T) {
	app := testApp(t)
	p := seedPTO(t, app, 2025, "120")

	opts, err := ptoYearOptions(context.Background(), app)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, p.ID, opts[0].Value)
	assert.Equal(t, "2025 (120.00 hours left)", opts[0].Key)
}

func TestPlanForm_NeedsAPTOYear(t *testing.T) {
	app := testApp(t)

	_, err := planForm(context.Background(), app, &planInput{})
	assert.ErrorContains(t, err, "no PTO years yet")
}

func TestPlanForm_DefaultsStatus(t *testing.T) {
	app := testApp(t)
	seedPTO(t, app, 2025, "120")
	in := &planInput{}

	form, err := planForm(context.Background(), app, in)
	require.NoError(t, err)
	assert.NotNil(t, form)
	assert.Equal(t, string(domain.PlanPlanned), in.Status)
}

func TestPlanInput_Missing(t *testing.T) {
	in := planInput{PTOID: "p", Name: "Trip", Start: "2025-03-03"}
	assert.True(t, in.missing())
	in.End = "2025-03-04"
	assert.False(t, in.missing())
}

func TestPlanInput_ToPlan(t *testing.T) {
	in := planInput{PTOID: "p", Name: "  Trip ", Start: "03/03/2025", End: "2025-03-04", Hours: "10", Status: "approved"}

	p, hours, err := in.toPlan()
	require.NoError(t, err)
	assert.Equal(t, "Trip", p.Name)
	assert.True(t, p.StartDate.Equal(testutil.Date(2025, 3, 3)))
	assert.Equal(t, domain.PlanApproved, p.Status)
	require.NotNil(t, hours)
	assert.True(t, hours.Equal(testutil.D("10")))

	in.Hours = ""
	_, hours, err = in.toPlan()
	require.NoError(t, err)
	assert.Nil(t, hours)

	in.Status = "someday"
	_, _, err = in.toPlan()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDecimalFlag(t *testing.T) {
	var f decimalFlag
	assert.Equal(t, "decimal", f.Type())
	assert.Nil(t, f.Ptr())
	assert.True(t, f.Or(testutil.D("5")).Equal(testutil.D("5")))

	require.NoError(t, f.Set("12.50"))
	assert.Equal(t, "12.5", f.String())
	assert.True(t, f.Or(testutil.D("5")).Equal(testutil.D("12.5")))

	require.NoError(t, f.Set(" "))
	assert.Nil(t, f.Ptr())
	assert.Error(t, f.Set("twelve"))
}

func TestDateFlag(t *testing.T) {
	var f dateFlag
	assert.Equal(t, "date", f.Type())
	assert.False(t, f.IsSet())
	assert.True(t, f.Time().IsZero())

	require.NoError(t, f.Set("12/31/2025"))
	assert.True(t, f.IsSet())
	assert.Equal(t, "2025-12-31", f.String())

	require.NoError(t, f.Set(""))
	assert.False(t, f.IsSet())
	assert.ErrorIs(t, f.Set("31/12/2025"), domain.ErrValidation)
}
