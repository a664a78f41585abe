package messaging

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

// Reminder is one member's reminder for a session: all their roles that day
// plus the study context.
type Reminder struct {
	MemberName  string
	Phone       string
	Email       string
	Roles       []model.Role
	Date        time.Time
	Passage     string
	SeriesTitle string
}

// Body renders the reminder message text
func (r Reminder) Body() string {
	roleNames := make([]string, 0, len(r.Roles))
	for _, role := range r.Roles {
		roleNames = append(roleNames, role.Display())
	}
	roleText := strings.Join(roleNames, " and ")

	var sb strings.Builder
	fmt.Fprintf(&sb, "*Bible Study Reminder - %s*\n\n", r.Date.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Hello %s,\n\n", r.MemberName)
	fmt.Fprintf(&sb, "This is a friendly reminder that you're scheduled for *%s* at Bible study.\n\n", roleText)
	fmt.Fprintf(&sb, "*Passage:* %s\n", r.Passage)
	if r.SeriesTitle != "" {
		fmt.Fprintf(&sb, "*Series:* %s\n", r.SeriesTitle)
	}
	sb.WriteString("\nPlease come prepared to share and participate. We're looking forward to seeing you there!\n\n")
	sb.WriteString("Blessings,\nYour Bible Study Team\n")
	return sb.String()
}

// Subject renders the email subject line
func (r Reminder) Subject() string {
	return fmt.Sprintf("Bible Study Reminder - %s", r.Date.Format("2006-01-02"))
}

// WhatsAppLink builds a wa.me click-to-send link for the reminder.
// Non-digits are stripped from the phone number and a leading 0 is replaced
// with the country code. Returns an empty string if no phone is on record.
func (r Reminder) WhatsAppLink(countryCode string) string {
	digits := make([]byte, 0, len(r.Phone))
	for i := 0; i < len(r.Phone); i++ {
		if r.Phone[i] >= '0' && r.Phone[i] <= '9' {
			digits = append(digits, r.Phone[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}

	phone := string(digits)
	if strings.HasPrefix(phone, "0") {
		phone = countryCode + phone[1:]
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(r.Body()))
}

// ScheduledRole pairs a role with the member holding it for a session
type ScheduledRole struct {
	Role   model.Role
	Member model.Member
}

// BuildReminders groups one session's role lines per member, producing one
// reminder per person even when they hold several roles
func BuildReminders(session model.Session, seriesTitle string, roles []ScheduledRole) []Reminder {
	byMember := make(map[string]*Reminder)
	var order []string

	for _, line := range roles {
		reminder, ok := byMember[line.Member.ID]
		if !ok {
			reminder = &Reminder{
				MemberName:  line.Member.Name,
				Phone:       line.Member.Phone,
				Email:       line.Member.Email,
				Date:        session.Date,
				Passage:     session.Passage,
				SeriesTitle: seriesTitle,
			}
			byMember[line.Member.ID] = reminder
			order = append(order, line.Member.ID)
		}
		reminder.Roles = append(reminder.Roles, line.Role)
	}

	reminders := make([]Reminder, 0, len(order))
	for _, id := range order {
		reminders = append(reminders, *byMember[id])
	}
	return reminders
}
