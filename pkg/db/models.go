package db

// Member represents a database member record
type Member struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	IsActive bool
}

// Availability represents a database member_availability record.
// Date is formatted as YYYY-MM-DD.
type Availability struct {
	MemberID    string
	Date        string
	IsAvailable bool
	Reason      string
}

// Series represents a database series record
type Series struct {
	ID        string
	Title     string
	Theme     string
	StartDate string
}

// Session represents a database session record.
// SessionDate is the primary key (one meeting per calendar date).
type Session struct {
	SessionDate string
	SeriesID    string
	Topic       string
	Passage     string
}

// ScheduleRole represents a database schedule_role record.
// (SessionDate, Role) is unique; re-runs replace, never duplicate.
type ScheduleRole struct {
	SessionDate string
	Role        string
	MemberID    string
}

// Material represents a database generated_material record
type Material struct {
	ID          string
	SessionDate string
	Category    string
	Content     string
	Source      string
}
