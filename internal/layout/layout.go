// Package layout assigns day-view column placements so that visually
// overlapping appointments render side by side without collision.
//
// The packing is a local pairwise-overlap grouping, not a global
// interval-graph coloring: each appointment's column count is computed from
// its own overlap set. In three-or-more-way overlaps where the overlaps are
// not all mutual (A-B overlap, B-C overlap, A-C do not) the result is not
// guaranteed to be collision-free or space-optimal. Kept deliberately for
// behavioral compatibility with the calendar it renders.
package layout

import (
	"sort"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
)

// Placement is the horizontal band assigned to one appointment
type Placement struct {
	AppointmentID int64
	ColumnIndex   int
	ColumnCount   int
	WidthPct      float64 // 100 / ColumnCount
	OffsetPct     float64 // ColumnIndex * WidthPct
}

// Pack computes a placement for every appointment of a single day view.
// The input is not filtered by professional: appointments of different
// professionals share the same visual timeline and must also be laid out
// side by side. Ordering within an overlap group is by ID ascending, a
// stable tie-break independent of insertion order.
func Pack(appointments []*domain.Appointment) []Placement {
	placements := make([]Placement, 0, len(appointments))

	for _, appt := range appointments {
		group := overlapGroup(appt, appointments)

		sort.Slice(group, func(i, j int) bool {
			return group[i].ID < group[j].ID
		})

		index := 0
		for i, member := range group {
			if member.ID == appt.ID {
				index = i
				break
			}
		}

		width := 100.0 / float64(len(group))
		placements = append(placements, Placement{
			AppointmentID: appt.ID,
			ColumnIndex:   index,
			ColumnCount:   len(group),
			WidthPct:      width,
			OffsetPct:     float64(index) * width,
		})
	}

	return placements
}

// overlapGroup returns every appointment of the day whose interval strictly
// overlaps appt's interval, including appt itself
func overlapGroup(appt *domain.Appointment, appointments []*domain.Appointment) []*domain.Appointment {
	interval := appt.Interval()

	group := make([]*domain.Appointment, 0, 4)
	for _, other := range appointments {
		if other.ID == appt.ID || interval.Overlaps(other.Interval()) {
			group = append(group, other)
		}
	}
	return group
}
