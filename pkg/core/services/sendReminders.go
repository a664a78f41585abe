package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/internal/config"
	"github.com/kambari/kambari-agent/pkg/core/messaging"
	"github.com/kambari/kambari-agent/pkg/core/model"
	"github.com/kambari/kambari-agent/pkg/db"
)

// SendRemindersStore is the storage surface reminder sending needs
type SendRemindersStore interface {
	GetSessionsInRange(ctx context.Context, from, to string) ([]db.Session, error)
	GetAssignments(ctx context.Context, from, to string) ([]db.ScheduleRole, error)
	GetMembers(ctx context.Context, activeOnly bool) ([]db.Member, error)
	GetSeries(ctx context.Context) ([]db.Series, error)
}

// EmailSender sends one reminder email. gmailclient.Client satisfies this.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// ReminderDelivery is the per-member outcome of a reminder run
type ReminderDelivery struct {
	MemberName   string
	Email        string
	WhatsAppLink string
	Body         string
	Emailed      bool
	Error        string
}

// SendReminders builds one reminder per scheduled member for the session on
// the given date. Each reminder always gets a WhatsApp click-to-send link;
// email is sent only when a sender is configured, the member has an address,
// and testMode is off. Individual email failures are recorded per delivery
// rather than aborting the run.
func SendReminders(ctx context.Context, database SendRemindersStore, mailer EmailSender, cfg *config.Config, logger *zap.Logger, date string, testMode bool) ([]ReminderDelivery, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	sessions, err := database.GetSessionsInRange(ctx, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no session scheduled for %s", date)
	}
	sessionModels, err := toModelSessions(sessions)
	if err != nil {
		return nil, err
	}
	session := sessionModels[0]

	assignments, err := database.GetAssignments(ctx, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, fmt.Errorf("no schedule found for %s, generate one first", date)
	}

	memberRecords, err := database.GetMembers(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	membersByID := make(map[string]model.Member, len(memberRecords))
	for _, m := range toModelMembers(memberRecords) {
		membersByID[m.ID] = m
	}

	seriesTitle, err := seriesTitleFor(ctx, database, session.SeriesID)
	if err != nil {
		return nil, err
	}

	// Keep role lines in priority order so multi-role reminders list roles
	// the way the schedule displays them
	byRole := make(map[model.Role]string, len(assignments))
	for _, a := range assignments {
		byRole[model.Role(a.Role)] = a.MemberID
	}
	var roleLines []messaging.ScheduledRole
	for _, role := range cfg.RoleList() {
		memberID, ok := byRole[role]
		if !ok {
			continue
		}
		member, ok := membersByID[memberID]
		if !ok {
			logger.Warn("Assignment references unknown member",
				zap.String("member_id", memberID),
				zap.String("role", string(role)))
			continue
		}
		roleLines = append(roleLines, messaging.ScheduledRole{Role: role, Member: member})
	}

	reminders := messaging.BuildReminders(session, seriesTitle, roleLines)
	logger.Debug("Built reminders",
		zap.String("date", date),
		zap.Int("count", len(reminders)),
		zap.Bool("test_mode", testMode))

	deliveries := make([]ReminderDelivery, 0, len(reminders))
	for _, r := range reminders {
		delivery := ReminderDelivery{
			MemberName:   r.MemberName,
			Email:        r.Email,
			WhatsAppLink: r.WhatsAppLink(cfg.CountryCode),
			Body:         r.Body(),
		}

		switch {
		case testMode:
			logger.Info("Test mode, reminder not emailed", zap.String("member", r.MemberName))
		case mailer == nil:
			logger.Debug("No email sender configured", zap.String("member", r.MemberName))
		case r.Email == "":
			logger.Debug("Member has no email address", zap.String("member", r.MemberName))
		default:
			if err := mailer.SendEmail(r.Email, r.Subject(), r.Body()); err != nil {
				logger.Error("Failed to email reminder",
					zap.String("member", r.MemberName),
					zap.Error(err))
				delivery.Error = err.Error()
			} else {
				delivery.Emailed = true
				logger.Info("Reminder emailed",
					zap.String("member", r.MemberName),
					zap.String("email", r.Email))
			}
		}

		deliveries = append(deliveries, delivery)
	}

	return deliveries, nil
}

// seriesTitleFor resolves the series title for a session, tolerating sessions
// whose series record is missing
func seriesTitleFor(ctx context.Context, database SendRemindersStore, seriesID string) (string, error) {
	series, err := database.GetSeries(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch series: %w", err)
	}
	for _, s := range series {
		if s.ID == seriesID {
			return s.Title, nil
		}
	}
	return "", nil
}
