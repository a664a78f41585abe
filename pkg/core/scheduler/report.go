package scheduler

import (
	"sort"
	"time"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

// RoleLine is one staffed (or open) role in a session report
type RoleLine struct {
	Role       model.Role
	MemberID   string
	MemberName string
	Filled     bool
}

// SessionReport is one session with its roles in priority order
type SessionReport struct {
	Date    time.Time
	Topic   string
	Passage string
	Roles   []RoleLine
}

// ScheduleReport is the display structure for a date range: sessions in date
// order, each with roles grouped in priority order. This is the input shape
// for reminder and summary formatting.
type ScheduleReport struct {
	Sessions []SessionReport
}

// BuildReport joins sessions, assignments and member names into a report
// grouped by date then role
func BuildReport(sessions []model.Session, assignments []model.Assignment, members []model.Member, roles []model.Role) ScheduleReport {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	byDate := make(map[string]map[model.Role]string)
	for _, a := range assignments {
		key := dateKey(a.Date)
		if byDate[key] == nil {
			byDate[key] = make(map[model.Role]string)
		}
		byDate[key][a.Role] = a.MemberID
	}

	ordered := make([]model.Session, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	report := ScheduleReport{Sessions: make([]SessionReport, 0, len(ordered))}
	for _, s := range ordered {
		sr := SessionReport{
			Date:    s.Date,
			Topic:   s.Topic,
			Passage: s.Passage,
			Roles:   make([]RoleLine, 0, len(roles)),
		}
		for _, role := range roles {
			line := RoleLine{Role: role}
			if memberID, ok := byDate[dateKey(s.Date)][role]; ok {
				line.MemberID = memberID
				line.MemberName = names[memberID]
				line.Filled = true
			}
			sr.Roles = append(sr.Roles, line)
		}
		report.Sessions = append(report.Sessions, sr)
	}
	return report
}
