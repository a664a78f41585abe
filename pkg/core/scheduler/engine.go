package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

// DefaultCooldownDays is the minimum gap before a member repeats the same role
const DefaultCooldownDays = 14

// CapacityError reports structural infeasibility: fewer eligible members than
// roles means no session can ever be fully staffed, regardless of dates.
type CapacityError struct {
	Members int
	Roles   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("need at least %d active members to fill all roles, have %d", e.Roles, e.Members)
}

// AvailabilitySet answers whether a member is available on a date.
// Members are available by default; only explicit records override that.
type AvailabilitySet struct {
	records map[availabilityKey]bool
}

type availabilityKey struct {
	memberID string
	date     string
}

// NewAvailabilitySet indexes explicit availability records for lookup
func NewAvailabilitySet(records []model.AvailabilityRecord) AvailabilitySet {
	indexed := make(map[availabilityKey]bool, len(records))
	for _, r := range records {
		indexed[availabilityKey{memberID: r.MemberID, date: dateKey(r.Date)}] = r.Available
	}
	return AvailabilitySet{records: indexed}
}

// IsAvailable reports whether the member can serve on the date
func (a AvailabilitySet) IsAvailable(memberID string, date time.Time) bool {
	available, ok := a.records[availabilityKey{memberID: memberID, date: dateKey(date)}]
	if !ok {
		return true
	}
	return available
}

// Config carries everything one scheduling run needs. The engine only reads
// members and availability; it never mutates shared reference data.
type Config struct {
	// Sessions to staff, in date order
	Sessions []model.Session

	// Members eligible for assignment (inactive members are skipped)
	Members []model.Member

	// Availability lookup built from explicit records
	Availability AvailabilitySet

	// History of recent role holdings, computed once per run
	History RoleHistory

	// Roles to fill for every session, in priority order
	Roles []model.Role

	// CooldownDays is the per-role repeat cooldown (DefaultCooldownDays if 0)
	CooldownDays int

	// Seed for the tie-break shuffle. Fixed seeds make runs reproducible;
	// production callers may seed from the clock.
	Seed int64
}

// RepairedAssignment records a slot the repair pass relocated to a later date
type RepairedAssignment struct {
	Role         model.Role
	MemberID     string
	OriginalDate time.Time
	NewDate      time.Time
}

// UnfilledSlot is a (session, role) that could not be staffed even after repair
type UnfilledSlot struct {
	Date time.Time
	Role model.Role
}

// Outcome is the structured result of a scheduling run. Assignments includes
// relocated slots at their new dates; Repaired records where they moved from.
type Outcome struct {
	Assignments []model.Assignment
	Repaired    []RepairedAssignment
	Unfilled    []UnfilledSlot
}

// engine holds the mutable state of one run
type engine struct {
	cfg  Config
	pool []model.Member // active members in shuffled tie-break order

	// assignedMembers tracks who already holds a role on each date
	assignedMembers map[string]map[string]bool

	// filledRoles tracks which roles are taken on each date, including slots
	// pre-filled by repair before the main pass reaches that session
	filledRoles map[string]map[model.Role]string

	// lastHeld is the working recency index: seeded from history, then
	// updated as the run makes assignments so fairness ranking sees them
	lastHeld map[HistoryKey]time.Time

	outcome *Outcome
}

// Assign staffs every role on every session where feasible.
//
// Per session, roles are filled in priority order with the available member
// who held the role least recently (never-held ranks first; ties broken by a
// shuffle seeded once per run). The cooldown excludes recent holders on the
// first pass and is relaxed rather than leaving a slot empty. A slot that
// still cannot be filled triggers an inline repair: the role is relocated to
// the first later session with that role still open and a free, available
// member. Slots that survive repair are reported as unfilled.
func Assign(cfg Config) (*Outcome, error) {
	if len(cfg.Roles) == 0 {
		return nil, fmt.Errorf("role set must not be empty")
	}
	if cfg.CooldownDays < 0 {
		return nil, fmt.Errorf("cooldown must be non-negative, got %d days", cfg.CooldownDays)
	}
	if cfg.CooldownDays == 0 {
		cfg.CooldownDays = DefaultCooldownDays
	}

	pool := make([]model.Member, 0, len(cfg.Members))
	for _, m := range cfg.Members {
		if m.Active {
			pool = append(pool, m)
		}
	}
	if len(pool) < len(cfg.Roles) {
		return nil, &CapacityError{Members: len(pool), Roles: len(cfg.Roles)}
	}

	// One shuffle per run, not per role, so tie-breaks carry no systematic
	// bias toward roster order while staying reproducible for a fixed seed.
	rng := rand.New(rand.NewSource(cfg.Seed))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	e := &engine{
		cfg:             cfg,
		pool:            pool,
		assignedMembers: make(map[string]map[string]bool),
		filledRoles:     make(map[string]map[model.Role]string),
		lastHeld:        make(map[HistoryKey]time.Time),
		outcome:         &Outcome{},
	}
	for _, m := range pool {
		for _, role := range cfg.Roles {
			if last, ok := cfg.History.LastHeld(m.ID, role); ok {
				e.lastHeld[HistoryKey{MemberID: m.ID, Role: role}] = last
			}
		}
	}

	for i := range cfg.Sessions {
		e.assignSession(i)
	}

	sortAssignments(e.outcome.Assignments)
	return e.outcome, nil
}

// assignSession fills every open role for one session, repairing what it can't
func (e *engine) assignSession(idx int) {
	session := e.cfg.Sessions[idx]
	date := session.Date

	for _, role := range e.cfg.Roles {
		if _, taken := e.roleHolder(date, role); taken {
			// Pre-filled by an earlier repair
			continue
		}

		member, ok := e.pickMember(role, date)
		if !ok {
			if !e.repair(idx, role) {
				e.outcome.Unfilled = append(e.outcome.Unfilled, UnfilledSlot{Date: date, Role: role})
			}
			continue
		}
		e.record(date, role, member.ID)
	}
}

// pickMember ranks candidates for a role on a date and returns the best one.
// The first pass excludes members inside the cooldown window; if that leaves
// nobody, the cooldown is relaxed and ranking falls back to pure recency.
func (e *engine) pickMember(role model.Role, date time.Time) (model.Member, bool) {
	var candidates []model.Member
	for _, m := range e.pool {
		if !e.cfg.Availability.IsAvailable(m.ID, date) {
			continue
		}
		if e.assignedMembers[dateKey(date)][m.ID] {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return model.Member{}, false
	}

	eligible := make([]model.Member, 0, len(candidates))
	for _, m := range candidates {
		if !e.inCooldown(m.ID, role, date) {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) == 0 {
		// Relax the cooldown rather than leave the slot empty
		eligible = candidates
	}

	e.rankByStaleness(eligible, role)
	return eligible[0], true
}

// rankByStaleness orders members by how long ago they last held the role,
// never-held first. The stable sort preserves the per-run shuffle for ties.
func (e *engine) rankByStaleness(members []model.Member, role model.Role) {
	sort.SliceStable(members, func(i, j int) bool {
		lastI, heldI := e.lastHeld[HistoryKey{MemberID: members[i].ID, Role: role}], false
		if !lastI.IsZero() {
			heldI = true
		}
		lastJ, heldJ := e.lastHeld[HistoryKey{MemberID: members[j].ID, Role: role}], false
		if !lastJ.IsZero() {
			heldJ = true
		}
		if heldI != heldJ {
			return !heldI
		}
		if !heldI {
			return false
		}
		return lastI.Before(lastJ)
	})
}

// repair relocates an unfillable (session, role) to a later session in the
// run: same role, later date, served by someone free and available that day.
// Returns false if no later session offers a qualifying member.
func (e *engine) repair(sessionIdx int, role model.Role) bool {
	origDate := e.cfg.Sessions[sessionIdx].Date

	for j := sessionIdx + 1; j < len(e.cfg.Sessions); j++ {
		laterDate := e.cfg.Sessions[j].Date
		if _, taken := e.roleHolder(laterDate, role); taken {
			continue
		}
		for _, m := range e.pool {
			if !e.cfg.Availability.IsAvailable(m.ID, laterDate) {
				continue
			}
			if e.assignedMembers[dateKey(laterDate)][m.ID] {
				continue
			}
			e.record(laterDate, role, m.ID)
			e.outcome.Repaired = append(e.outcome.Repaired, RepairedAssignment{
				Role:         role,
				MemberID:     m.ID,
				OriginalDate: origDate,
				NewDate:      laterDate,
			})
			return true
		}
	}
	return false
}

// record commits an assignment into the run state and outcome
func (e *engine) record(date time.Time, role model.Role, memberID string) {
	key := dateKey(date)
	if e.assignedMembers[key] == nil {
		e.assignedMembers[key] = make(map[string]bool)
	}
	if e.filledRoles[key] == nil {
		e.filledRoles[key] = make(map[model.Role]string)
	}
	e.assignedMembers[key][memberID] = true
	e.filledRoles[key][role] = memberID

	// Keep the working recency index current so later sessions in this run
	// rank this member as the most recent holder of the role.
	held := e.lastHeld[HistoryKey{MemberID: memberID, Role: role}]
	if date.After(held) {
		e.lastHeld[HistoryKey{MemberID: memberID, Role: role}] = date
	}

	e.outcome.Assignments = append(e.outcome.Assignments, model.Assignment{
		Date:     date,
		Role:     role,
		MemberID: memberID,
	})
}

func (e *engine) roleHolder(date time.Time, role model.Role) (string, bool) {
	holder, ok := e.filledRoles[dateKey(date)][role]
	return holder, ok
}

// inCooldown reports whether the member held this role within the cooldown
// window before the date
func (e *engine) inCooldown(memberID string, role model.Role, date time.Time) bool {
	last, ok := e.lastHeld[HistoryKey{MemberID: memberID, Role: role}]
	if !ok || last.IsZero() {
		return false
	}
	return date.Sub(last) < time.Duration(e.cfg.CooldownDays)*24*time.Hour
}

// sortAssignments orders by date then role for a stable, comparable outcome
func sortAssignments(assignments []model.Assignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		if !assignments[i].Date.Equal(assignments[j].Date) {
			return assignments[i].Date.Before(assignments[j].Date)
		}
		return assignments[i].Role < assignments[j].Role
	})
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
