package scheduler

import (
	"sort"
	"time"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

// historyDepth caps how many past dates are retained per (member, role) key
const historyDepth = 3

// HistoryKey identifies one member's record for one role
type HistoryKey struct {
	MemberID string
	Role     model.Role
}

// RoleHistory maps (member, role) to the dates the member last held that role,
// most recent first, capped at historyDepth entries. A key with no entry means
// the member never held the role within the lookback window, which ranks as
// maximally eligible.
type RoleHistory map[HistoryKey][]time.Time

// BuildRoleHistory derives a RoleHistory from past assignments. Assignments
// dated before the cutoff are ignored. The input is not assumed to be sorted.
func BuildRoleHistory(assignments []model.Assignment, cutoff time.Time) RoleHistory {
	grouped := make(map[HistoryKey][]time.Time)
	for _, a := range assignments {
		if a.Date.Before(cutoff) {
			continue
		}
		key := HistoryKey{MemberID: a.MemberID, Role: a.Role}
		grouped[key] = append(grouped[key], a.Date)
	}

	history := make(RoleHistory, len(grouped))
	for key, dates := range grouped {
		sort.Slice(dates, func(i, j int) bool {
			return dates[i].After(dates[j])
		})
		if len(dates) > historyDepth {
			dates = dates[:historyDepth]
		}
		history[key] = dates
	}
	return history
}

// LastHeld returns the most recent date the member held the role.
// The second return is false if the member never held it within the window.
func (h RoleHistory) LastHeld(memberID string, role model.Role) (time.Time, bool) {
	dates := h[HistoryKey{MemberID: memberID, Role: role}]
	if len(dates) == 0 {
		return time.Time{}, false
	}
	return dates[0], true
}
