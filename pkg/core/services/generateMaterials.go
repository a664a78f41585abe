package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/pkg/core/content"
	"github.com/kambari/kambari-agent/pkg/db"
)

// GenerateMaterialsStore is the storage surface study guide generation needs
type GenerateMaterialsStore interface {
	GetSessionsInRange(ctx context.Context, from, to string) ([]db.Session, error)
	UpsertMaterial(ctx context.Context, material *db.Material) error
	GetMaterials(ctx context.Context, sessionDate string) ([]db.Material, error)
}

// GuideSection is one category of a study guide
type GuideSection struct {
	Category  string
	Questions []string
	Source    string
}

// StudyGuide is a session's complete question set, sections in guide order
type StudyGuide struct {
	SessionDate string
	Topic       string
	Passage     string
	Sections    []GuideSection
	Fallbacks   []FallbackEvent
}

// GenerateMaterials regenerates the study guide for the session on a date and
// stores each section, replacing whatever was generated before. Sections
// whose generation fails fall back to the fixed question lists.
func GenerateMaterials(ctx context.Context, database GenerateMaterialsStore, generator QuestionGenerator, logger *zap.Logger, date string) (*StudyGuide, error) {
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
	session := sessions[0]

	guide := &StudyGuide{
		SessionDate: session.SessionDate,
		Topic:       session.Topic,
		Passage:     session.Passage,
	}

	for _, category := range content.Categories {
		questions, event := questionsForSection(ctx, generator, logger, session, category)
		if event != nil {
			guide.Fallbacks = append(guide.Fallbacks, *event)
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
			return guide, fmt.Errorf("failed to store %s questions for %s: %w", category, session.SessionDate, err)
		}

		guide.Sections = append(guide.Sections, GuideSection{
			Category:  category,
			Questions: questions,
			Source:    source,
		})
	}

	logger.Info("Study guide generated",
		zap.String("date", guide.SessionDate),
		zap.String("passage", guide.Passage),
		zap.Int("fallback_sections", len(guide.Fallbacks)))
	return guide, nil
}

// LoadMaterials returns the stored study guide for a session date, built from
// previously generated sections in guide order
func LoadMaterials(ctx context.Context, database GenerateMaterialsStore, logger *zap.Logger, date string) (*StudyGuide, error) {
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
	session := sessions[0]

	materials, err := database.GetMaterials(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch materials: %w", err)
	}
	if len(materials) == 0 {
		return nil, fmt.Errorf("no study guide stored for %s, generate one first", date)
	}

	byCategory := make(map[string]db.Material, len(materials))
	for _, m := range materials {
		byCategory[m.Category] = m
	}

	guide := &StudyGuide{
		SessionDate: session.SessionDate,
		Topic:       session.Topic,
		Passage:     session.Passage,
	}
	for _, category := range content.Categories {
		m, ok := byCategory[category]
		if !ok {
			continue
		}
		guide.Sections = append(guide.Sections, GuideSection{
			Category:  category,
			Questions: strings.Split(m.Content, "\n"),
			Source:    m.Source,
		})
	}

	logger.Debug("Loaded study guide", zap.String("date", date), zap.Int("sections", len(guide.Sections)))
	return guide, nil
}
