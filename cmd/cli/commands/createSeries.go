package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kambari/kambari-agent/pkg/core/model"
	"github.com/kambari/kambari-agent/pkg/core/services"
)

// planEntry is one row of a custom content plan file
type planEntry struct {
	Title   string `yaml:"title"`
	Passage string `yaml:"passage"`
}

// CreateSeriesCmd creates the createSeries command
func CreateSeriesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createSeries",
		Short: "Create a study series with dated sessions and study guides",
		Long: `Create a study series, laying its content plan onto the calendar and
generating a study guide per session. Without --plan the built-in
Women of Faith study is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			theme, _ := cmd.Flags().GetString("theme")
			start, _ := cmd.Flags().GetString("start")
			planPath, _ := cmd.Flags().GetString("plan")

			params := services.CreateSeriesParams{
				Title:     title,
				Theme:     theme,
				StartDate: start,
			}
			if cmd.Flags().Changed("interval") {
				interval, _ := cmd.Flags().GetInt("interval")
				params.IntervalDays = &interval
			}
			if planPath != "" {
				entries, err := loadPlanFile(planPath)
				if err != nil {
					return err
				}
				params.Entries = entries
			}

			var generator services.QuestionGenerator
			if app.GenClient != nil {
				generator = app.GenClient
			}

			result, err := services.CreateSeries(app.Ctx, app.Database, generator, app.Cfg, app.Logger, params)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Series created!\n\n")
			fmt.Printf("ID:       %s\n", result.Series.ID)
			fmt.Printf("Title:    %s\n", result.Series.Title)
			fmt.Printf("Sessions: %d\n\n", len(result.Sessions))

			for i, s := range result.Sessions {
				fmt.Printf("  %2d. %s  %s (%s)\n", i+1, s.SessionDate, s.Topic, s.Passage)
			}
			fmt.Println()

			if len(result.Fallbacks) > 0 {
				fmt.Printf("⚠️  %d study guide sections used fallback questions:\n", len(result.Fallbacks))
				for _, f := range result.Fallbacks {
					fmt.Printf("  - %s %s: %s\n", f.SessionDate, f.Category, f.Reason)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().String("title", "", "Series title (defaults to the plan's title)")
	cmd.Flags().String("theme", "", "Series theme")
	cmd.Flags().String("start", "", "First session date YYYY-MM-DD (defaults to the configured anchor rule)")
	cmd.Flags().Int("interval", 0, "Days between sessions (defaults to the configured interval)")
	cmd.Flags().String("plan", "", "YAML file with a custom content plan (list of title/passage entries)")
	return cmd
}

// loadPlanFile reads a custom content plan from a YAML file
func loadPlanFile(path string) ([]model.ContentEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var rows []planEntry
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("plan file %s contains no entries", path)
	}

	entries := make([]model.ContentEntry, 0, len(rows))
	for i, row := range rows {
		if row.Passage == "" {
			return nil, fmt.Errorf("plan file entry %d has no passage", i+1)
		}
		entries = append(entries, model.ContentEntry{Title: row.Title, Passage: row.Passage})
	}
	return entries, nil
}
