package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dmodel "odontocare_backend/internals/features/dentists/model"
)

func TestDefaultAvailabilityOptions(t *testing.T) {
	opts := DefaultAvailabilityOptions()
	require.Len(t, opts, 12)

	days := map[string]int{}
	seen := map[string]bool{}
	for _, o := range opts {
		assert.False(t, o.Selected, "template starts unselected")
		days[o.Weekday]++

		key := o.Weekday + o.StartTime + o.EndTime
		assert.False(t, seen[key], "duplicate slot %v", o)
		seen[key] = true

		assert.Contains(t, []string{"08:00", "14:00"}, o.StartTime)
		assert.Contains(t, []string{"12:00", "18:00"}, o.EndTime)
	}

	require.Len(t, days, 6)
	for day, n := range days {
		assert.Equalf(t, 2, n, "weekday %s should have two windows", day)
	}
	assert.NotContains(t, days, "Sunday")
}

func TestMergeExistingSelections(t *testing.T) {
	dentistID := uuid.New()
	existing := []dmodel.DentistAvailabilityModel{
		{DentistID: dentistID, Weekday: "Monday", StartTime: "08:00", EndTime: "12:00"},
		{DentistID: dentistID, Weekday: "Wednesday", StartTime: "14:00", EndTime: "18:00"},
	}

	opts := MergeExistingSelections(existing)
	require.Len(t, opts, 12)

	selected := map[string]bool{}
	for _, o := range opts {
		if o.Selected {
			selected[o.Weekday+" "+o.StartTime] = true
		}
	}
	assert.Len(t, selected, 2)
	assert.True(t, selected["Monday 08:00"])
	assert.True(t, selected["Wednesday 14:00"])
}

func TestMergeExistingSelectionsIdempotent(t *testing.T) {
	existing := []dmodel.DentistAvailabilityModel{
		{Weekday: "Friday", StartTime: "08:00", EndTime: "12:00"},
	}

	first := MergeExistingSelections(existing)
	second := MergeExistingSelections(existing)
	assert.Equal(t, first, second)
}

func TestMergeExistingSelectionsCollapsesDuplicates(t *testing.T) {
	existing := []dmodel.DentistAvailabilityModel{
		{Weekday: "Tuesday", StartTime: "14:00", EndTime: "18:00"},
		{Weekday: "Tuesday", StartTime: "14:00", EndTime: "18:00"},
	}

	opts := MergeExistingSelections(existing)
	count := 0
	for _, o := range opts {
		if o.Selected {
			count++
		}
	}
	assert.Equal(t, 1, count, "identical rows collapse into one canonical slot")
}

func TestMergeExistingSelectionsIgnoresNonCanonicalRows(t *testing.T) {
	existing := []dmodel.DentistAvailabilityModel{
		{Weekday: "Monday", StartTime: "09:00", EndTime: "11:00"}, // off-template
		{Weekday: "Sunday", StartTime: "08:00", EndTime: "12:00"}, // off-template day
	}

	for _, o := range MergeExistingSelections(existing) {
		assert.False(t, o.Selected)
	}
}

func TestCanonicalizeSelections(t *testing.T) {
	submitted := []AvailabilityOption{
		{Weekday: "Monday", StartTime: "08:00", EndTime: "12:00", Selected: true},
		{Weekday: "Monday", StartTime: "23:00", EndTime: "23:59", Selected: true}, // invented slot
		{Weekday: "Saturday", StartTime: "14:00", EndTime: "18:00", Selected: false},
	}

	opts := CanonicalizeSelections(submitted)
	require.Len(t, opts, 12)

	var selected []AvailabilityOption
	for _, o := range opts {
		if o.Selected {
			selected = append(selected, o)
		}
	}
	require.Len(t, selected, 1)
	assert.Equal(t, "Monday", selected[0].Weekday)
	assert.Equal(t, "08:00", selected[0].StartTime)
}

func TestSelectedToModels(t *testing.T) {
	dentistID := uuid.New()
	opts := DefaultAvailabilityOptions()
	opts[0].Selected = true
	opts[5].Selected = true

	rows := SelectedToModels(dentistID, opts)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, dentistID, r.DentistID)
	}
	assert.Equal(t, opts[0].Weekday, rows[0].Weekday)
	assert.Equal(t, opts[5].Weekday, rows[1].Weekday)
}
