package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/internal/config"
	"github.com/kambari/kambari-agent/pkg/core/content"
	"github.com/kambari/kambari-agent/pkg/core/model"
	"github.com/kambari/kambari-agent/pkg/core/scheduler"
	"github.com/kambari/kambari-agent/pkg/db"
)

// QuestionGenerator produces study questions for a passage and category.
// genclient.Client satisfies this; tests substitute fakes.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, passageReference, category string) ([]string, error)
}

// FallbackEvent records one study guide section that used the fixed question
// list instead of generated content
type FallbackEvent struct {
	SessionDate string
	Passage     string
	Category    string
	Reason      string
}

// CreateSeriesParams describes the series to create. A nil Entries plan uses
// the built-in Women of Faith study. An empty StartDate anchors the first
// session with the configured recurrence rule.
type CreateSeriesParams struct {
	Title        string
	Theme        string
	Entries      []model.ContentEntry
	StartDate    string
	IntervalDays *int
}

// CreateSeriesResult is the created series, its dated sessions, and any
// sections that fell back to fixed questions
type CreateSeriesResult struct {
	Series    db.Series
	Sessions  []db.Session
	Fallbacks []FallbackEvent
}

// CreateSeriesStore is the storage surface series creation needs
type CreateSeriesStore interface {
	InsertSeries(ctx context.Context, series *db.Series, sessions []db.Session) error
	UpsertMaterial(ctx context.Context, material *db.Material) error
}

// CreateSeries lays a content plan onto the calendar and stores the series,
// its sessions, and a study guide per session. Question generation degrades
// per section: a failed call is logged, recorded as a fallback event, and the
// fixed question list is stored instead, so series creation never fails on
// the generation side.
func CreateSeries(ctx context.Context, database CreateSeriesStore, generator QuestionGenerator, cfg *config.Config, logger *zap.Logger, params CreateSeriesParams) (*CreateSeriesResult, error) {
	entries := params.Entries
	title := strings.TrimSpace(params.Title)
	if entries == nil {
		entries = content.WomenOfFaithPlan()
		if title == "" {
			title = content.WomenOfFaithTitle
		}
	}
	if title == "" {
		return nil, fmt.Errorf("series title must not be empty")
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("series content plan must not be empty")
	}

	start, err := resolveStartDate(params.StartDate, cfg, logger)
	if err != nil {
		return nil, err
	}

	interval := *cfg.IntervalDays
	if params.IntervalDays != nil {
		interval = *params.IntervalDays
	}

	seriesID := uuid.New().String()
	plan := scheduler.SessionPlan{
		Start:            start,
		IntervalDays:     interval,
		ExcludedWeekdays: cfg.ExcludedWeekdayList(),
	}

	logger.Debug("Building sessions",
		zap.String("series_id", seriesID),
		zap.Int("entries", len(entries)),
		zap.String("start", formatDate(start)),
		zap.Int("interval_days", interval))

	sessions, err := scheduler.BuildSessions(seriesID, entries, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to build sessions: %w", err)
	}

	series := db.Series{
		ID:        seriesID,
		Title:     title,
		Theme:     params.Theme,
		StartDate: formatDate(sessions[0].Date),
	}
	dbSessions := make([]db.Session, 0, len(sessions))
	for _, s := range sessions {
		dbSessions = append(dbSessions, db.Session{
			SessionDate: formatDate(s.Date),
			SeriesID:    s.SeriesID,
			Topic:       s.Topic,
			Passage:     s.Passage,
		})
	}

	if err := database.InsertSeries(ctx, &series, dbSessions); err != nil {
		return nil, fmt.Errorf("failed to insert series: %w", err)
	}

	logger.Info("Series created",
		zap.String("id", series.ID),
		zap.String("title", series.Title),
		zap.Int("sessions", len(dbSessions)),
		zap.String("first_session", dbSessions[0].SessionDate),
		zap.String("last_session", dbSessions[len(dbSessions)-1].SessionDate))

	result := &CreateSeriesResult{Series: series, Sessions: dbSessions}
	for _, session := range dbSessions {
		fallbacks, err := storeStudyGuide(ctx, database, generator, logger, session)
		if err != nil {
			return result, err
		}
		result.Fallbacks = append(result.Fallbacks, fallbacks...)
	}

	if len(result.Fallbacks) > 0 {
		logger.Warn("Some study guide sections used fallback questions",
			zap.Int("count", len(result.Fallbacks)))
	}
	return result, nil
}

// resolveStartDate parses an explicit date or anchors to the configured rule
func resolveStartDate(startDate string, cfg *config.Config, logger *zap.Logger) (time.Time, error) {
	if startDate != "" {
		return parseDate(startDate)
	}

	anchored, err := scheduler.NextAnchorDate(cfg.SessionAnchorRule, time.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to anchor start date: %w", err)
	}
	logger.Debug("No start date given, anchored from recurrence rule",
		zap.String("rule", cfg.SessionAnchorRule),
		zap.String("start", formatDate(anchored)))
	return anchored, nil
}

// storeStudyGuide generates and stores one session's question sections.
// Reflection sections always end with the permanent questions.
func storeStudyGuide(ctx context.Context, database CreateSeriesStore, generator QuestionGenerator, logger *zap.Logger, session db.Session) ([]FallbackEvent, error) {
	var fallbacks []FallbackEvent

	for _, category := range content.Categories {
		questions, event := questionsForSection(ctx, generator, logger, session, category)
		if event != nil {
			fallbacks = append(fallbacks, *event)
		}

		source := "generated"
		if event != nil {
			source = "fallback"
		}
		if category == content.CategoryReflection {
			questions = append(questions, content.PermanentQuestions(session.Passage)...)
		}

		material := &db.Material{
			ID:          uuid.New().String(),
			SessionDate: session.SessionDate,
			Category:    category,
			Content:     strings.Join(questions, "\n"),
			Source:      source,
		}
		if err := database.UpsertMaterial(ctx, material); err != nil {
			return fallbacks, fmt.Errorf("failed to store %s questions for %s: %w", category, session.SessionDate, err)
		}
	}

	return fallbacks, nil
}

// questionsForSection tries the generator, falling back to the fixed list on
// any failure or when no generator is configured
func questionsForSection(ctx context.Context, generator QuestionGenerator, logger *zap.Logger, session db.Session, category string) ([]string, *FallbackEvent) {
	if generator == nil {
		return content.FallbackQuestions(session.Passage, category), &FallbackEvent{
			SessionDate: session.SessionDate,
			Passage:     session.Passage,
			Category:    category,
			Reason:      "no question generator configured",
		}
	}

	questions, err := generator.GenerateQuestions(ctx, session.Passage, category)
	if err != nil {
		logger.Warn("Question generation failed, using fallback",
			zap.String("session_date", session.SessionDate),
			zap.String("category", category),
			zap.Error(err))
		return content.FallbackQuestions(session.Passage, category), &FallbackEvent{
			SessionDate: session.SessionDate,
			Passage:     session.Passage,
			Category:    category,
			Reason:      err.Error(),
		}
	}
	return questions, nil
}
