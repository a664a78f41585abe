package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kambari/kambari-agent/pkg/core/services"
)

// GenerateMaterialsCmd creates the generateMaterials command
func GenerateMaterialsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generateMaterials <date>",
		Short: "Regenerate the study guide for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var generator services.QuestionGenerator
			if app.GenClient != nil {
				generator = app.GenClient
			}

			guide, err := services.GenerateMaterials(app.Ctx, app.Database, generator, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Study guide generated!\n")
			printGuide(guide)

			if len(guide.Fallbacks) > 0 {
				fmt.Printf("⚠️  %d sections used fallback questions\n\n", len(guide.Fallbacks))
			}
			return nil
		},
	}
}

// ViewMaterialsCmd creates the viewMaterials command
func ViewMaterialsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewMaterials <date>",
		Short: "Show the stored study guide for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guide, err := services.LoadMaterials(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			printGuide(guide)
			return nil
		},
	}
}

// printGuide renders a study guide section by section
func printGuide(guide *services.StudyGuide) {
	fmt.Printf("\n%s  %s (%s)\n\n", guide.SessionDate, guide.Topic, guide.Passage)
	for _, section := range guide.Sections {
		title := strings.ToUpper(section.Category[:1]) + section.Category[1:]
		fmt.Printf("%s questions [%s]:\n", title, section.Source)
		for i, q := range section.Questions {
			fmt.Printf("  %2d. %s\n", i+1, q)
		}
		fmt.Println()
	}
}
