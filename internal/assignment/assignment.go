// Package assignment selects the reviewing officer for a new case.
//
// Officers that have never been assigned a case are chosen first, in pool
// order. Once every officer holds at least one assignment the least-loaded
// officer wins, where load is the number of assignments on cases that are
// still active. Ties keep pool order. The selection is pure and
// deterministic, so concurrent callers reading the same snapshot pick the
// same officer and the aggregate version check decides who persists.
package assignment

import (
	"slices"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// ActiveAssignment is one existing assignment of a user to a case.
type ActiveAssignment struct {
	UserID        string
	CaseReference string
}

// LoadIndex maps an officer to the number of active cases assigned to them.
type LoadIndex map[string]int

// BuildLoadIndex counts assignments per officer whose case reference is in
// activeCases. Every officer in pool is present in the result, with zero
// when nothing active is assigned.
func BuildLoadIndex(pool []string, assignments []ActiveAssignment, activeCases map[string]bool) LoadIndex {
	idx := make(LoadIndex, len(pool))
	for _, id := range pool {
		idx[id] = 0
	}
	for _, a := range assignments {
		if _, inPool := idx[a.UserID]; !inPool {
			continue
		}
		if activeCases[a.CaseReference] {
			idx[a.UserID]++
		}
	}
	return idx
}

// Unassigned returns the officers of pool that appear in no assignment, in
// pool order.
func Unassigned(pool []string, assignments []ActiveAssignment) []string {
	assigned := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		assigned[a.UserID] = struct{}{}
	}

	out := make([]string, 0, len(pool))
	for _, id := range pool {
		if _, ok := assigned[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// SelectOfficer picks the officer for the next assignment.
//
// role is only used for the error when the pool is empty.
func SelectOfficer(role string, pool []string, assignments []ActiveAssignment, activeCases map[string]bool) (string, error) {
	if len(pool) == 0 {
		return "", domain.NewNoEligibleOfficerError(role)
	}

	if fresh := Unassigned(pool, assignments); len(fresh) > 0 {
		return fresh[0], nil
	}

	return LeastLoaded(pool, BuildLoadIndex(pool, assignments, activeCases)), nil
}

// LeastLoaded returns the officer of pool with the smallest load. pool must
// not be empty.
func LeastLoaded(pool []string, load LoadIndex) string {
	ranked := slices.Clone(pool)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return load[a] - load[b]
	})
	return ranked[0]
}
