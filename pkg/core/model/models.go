package model

import "time"

// Role is a named responsibility assignable to exactly one member per session.
type Role string

// The classic three-role set used by the weekly study.
const (
	RolePrayerLead      Role = "prayer_lead"
	RoleScriptureReader Role = "scripture_reader"
	RoleSharingLead     Role = "sharing_lead"
)

// Extended roles used by the five-role variant.
const (
	RoleWorshipLeader    Role = "worship_leader"
	RolePrayerLeader     Role = "prayer_leader"
	RoleDiscussionLeader Role = "discussion_leader"
	RoleHospitality      Role = "hospitality"
)

// DefaultRoles is the role set assumed when the config doesn't name one.
// Order is assignment priority.
var DefaultRoles = []Role{RolePrayerLead, RoleScriptureReader, RoleSharingLead}

// ExtendedRoles is the five-role variant, in assignment priority order.
var ExtendedRoles = []Role{
	RoleWorshipLeader,
	RolePrayerLeader,
	RoleScriptureReader,
	RoleDiscussionLeader,
	RoleHospitality,
}

// Display returns a human-readable form of the role ("prayer_lead" -> "Prayer Lead")
func (r Role) Display() string {
	out := make([]byte, 0, len(r))
	upper := true
	for i := 0; i < len(r); i++ {
		c := r[i]
		if c == '_' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}

// Member represents a program participant
type Member struct {
	ID     string
	Name   string
	Phone  string
	Email  string
	Active bool
}

// AvailabilityRecord is an explicit per-date availability override for a member.
// Absence of a record means the member is available by default.
type AvailabilityRecord struct {
	MemberID  string
	Date      time.Time
	Available bool
	Reason    string
}

// Series is a named, dated run of a content plan
type Series struct {
	ID        string
	Title     string
	Theme     string
	StartDate time.Time
}

// ContentEntry is an ordered (topic, passage) pair belonging to a series plan.
// Immutable once generated into a Session.
type ContentEntry struct {
	Title   string
	Passage string
}

// Session is a single scheduled meeting occurrence.
// At most one session exists per calendar date.
type Session struct {
	Date     time.Time
	Topic    string
	Passage  string
	SeriesID string
}

// Assignment binds a role on a session date to exactly one member
type Assignment struct {
	Date     time.Time
	Role     Role
	MemberID string
}
