package db

import "context"

// MemberStore defines member roster operations
type MemberStore interface {
	GetMembers(ctx context.Context, activeOnly bool) ([]Member, error)
	InsertMember(ctx context.Context, member *Member) error
	SetMemberActive(ctx context.Context, memberID string, active bool) error
	// DeleteMember removes a member permanently. It fails if the member has
	// historical assignments, since reports reference them.
	DeleteMember(ctx context.Context, memberID string) error
}

// AvailabilityStore defines per-date availability operations
type AvailabilityStore interface {
	// SetAvailability upserts the record for (member, date)
	SetAvailability(ctx context.Context, record Availability) error
	GetAvailability(ctx context.Context, from, to string) ([]Availability, error)
}

// SeriesStore defines series and session operations
type SeriesStore interface {
	InsertSeries(ctx context.Context, series *Series, sessions []Session) error
	GetSeries(ctx context.Context) ([]Series, error)
	GetSessions(ctx context.Context, seriesID string) ([]Session, error)
	GetSessionsInRange(ctx context.Context, from, to string) ([]Session, error)
}

// ScheduleStore defines role assignment operations
type ScheduleStore interface {
	// GetRecentAssignments returns assignments dated on or after since
	GetRecentAssignments(ctx context.Context, since string) ([]ScheduleRole, error)
	GetAssignments(ctx context.Context, from, to string) ([]ScheduleRole, error)
	// SaveAssignments upserts all assignments in a single transaction,
	// replacing any existing (session_date, role) rows
	SaveAssignments(ctx context.Context, assignments []ScheduleRole) error
	ClearAssignments(ctx context.Context, from, to string) error
}

// MaterialStore defines generated study material operations
type MaterialStore interface {
	// UpsertMaterial replaces the content for (session_date, category)
	UpsertMaterial(ctx context.Context, material *Material) error
	GetMaterials(ctx context.Context, sessionDate string) ([]Material, error)
}

// Database is the full storage collaborator implemented by postgres.DB
type Database interface {
	MemberStore
	AvailabilityStore
	SeriesStore
	ScheduleStore
	MaterialStore
}
