package services

import (
	"fmt"
	"time"

	"github.com/kambari/kambari-agent/pkg/core/model"
	"github.com/kambari/kambari-agent/pkg/db"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD date string, rejecting anything malformed at
// the entry point rather than letting it drift into the scheduler
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return date, nil
}

func formatDate(date time.Time) string {
	return date.Format(dateLayout)
}

// findLatestSeries returns the series with the most recent start date
func findLatestSeries(series []db.Series) db.Series {
	latest := series[0]
	for _, s := range series[1:] {
		if s.StartDate > latest.StartDate {
			latest = s
		}
	}
	return latest
}

func toModelMembers(records []db.Member) []model.Member {
	members := make([]model.Member, 0, len(records))
	for _, r := range records {
		members = append(members, model.Member{
			ID:     r.ID,
			Name:   r.Name,
			Phone:  r.Phone,
			Email:  r.Email,
			Active: r.IsActive,
		})
	}
	return members
}

func toModelAvailability(records []db.Availability) ([]model.AvailabilityRecord, error) {
	out := make([]model.AvailabilityRecord, 0, len(records))
	for _, r := range records {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("availability record for member %s: %w", r.MemberID, err)
		}
		out = append(out, model.AvailabilityRecord{
			MemberID:  r.MemberID,
			Date:      date,
			Available: r.IsAvailable,
			Reason:    r.Reason,
		})
	}
	return out, nil
}

func toModelAssignments(records []db.ScheduleRole) ([]model.Assignment, error) {
	out := make([]model.Assignment, 0, len(records))
	for _, r := range records {
		date, err := parseDate(r.SessionDate)
		if err != nil {
			return nil, fmt.Errorf("assignment for member %s: %w", r.MemberID, err)
		}
		out = append(out, model.Assignment{
			Date:     date,
			Role:     model.Role(r.Role),
			MemberID: r.MemberID,
		})
	}
	return out, nil
}

func toModelSessions(records []db.Session) ([]model.Session, error) {
	out := make([]model.Session, 0, len(records))
	for _, r := range records {
		date, err := parseDate(r.SessionDate)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", r.SessionDate, err)
		}
		out = append(out, model.Session{
			Date:     date,
			Topic:    r.Topic,
			Passage:  r.Passage,
			SeriesID: r.SeriesID,
		})
	}
	return out, nil
}
