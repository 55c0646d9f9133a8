package service

import (
	"github.com/google/uuid"

	dmodel "odontocare_backend/internals/features/dentists/model"
)

// The clinic runs Monday through Saturday in two fixed windows per day,
// giving a canonical template of 12 slots.
var (
	weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	windows  = [][2]string{
		{"08:00", "12:00"},
		{"14:00", "18:00"},
	}
)

type AvailabilityOption struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Selected  bool   `json:"selected"`
}

// DefaultAvailabilityOptions returns the 12 canonical slots, unselected, in
// stable weekday-major order.
func DefaultAvailabilityOptions() []AvailabilityOption {
	opts := make([]AvailabilityOption, 0, len(weekdays)*len(windows))
	for _, day := range weekdays {
		for _, w := range windows {
			opts = append(opts, AvailabilityOption{
				Weekday:   day,
				StartTime: w[0],
				EndTime:   w[1],
			})
		}
	}
	return opts
}

// MergeExistingSelections prefills the template from persisted rows: a slot
// is selected iff some row matches weekday, start and end exactly. Duplicate
// identical rows collapse into the one canonical slot.
func MergeExistingSelections(existing []dmodel.DentistAvailabilityModel) []AvailabilityOption {
	opts := DefaultAvailabilityOptions()
	for i := range opts {
		for _, row := range existing {
			if row.Weekday == opts[i].Weekday &&
				row.StartTime == opts[i].StartTime &&
				row.EndTime == opts[i].EndTime {
				opts[i].Selected = true
				break
			}
		}
	}
	return opts
}

// CanonicalizeSelections maps a submitted selection onto the template so
// that only canonical (weekday, window) pairs survive, whatever the client
// sent.
func CanonicalizeSelections(submitted []AvailabilityOption) []AvailabilityOption {
	opts := DefaultAvailabilityOptions()
	for i := range opts {
		for _, s := range submitted {
			if s.Selected &&
				s.Weekday == opts[i].Weekday &&
				s.StartTime == opts[i].StartTime &&
				s.EndTime == opts[i].EndTime {
				opts[i].Selected = true
				break
			}
		}
	}
	return opts
}

// SelectedToModels builds the rows to persist for the selected subset.
func SelectedToModels(dentistID uuid.UUID, opts []AvailabilityOption) []dmodel.DentistAvailabilityModel {
	rows := make([]dmodel.DentistAvailabilityModel, 0, len(opts))
	for _, o := range opts {
		if !o.Selected {
			continue
		}
		rows = append(rows, dmodel.DentistAvailabilityModel{
			DentistID: dentistID,
			Weekday:   o.Weekday,
			StartTime: o.StartTime,
			EndTime:   o.EndTime,
		})
	}
	return rows
}
