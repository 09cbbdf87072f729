package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ideal-jiwon/gongbu/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the study data for problems",
	Long:  "Validates concepts.json and questions.json against their schemas, checks cross-references, and reports how well the data covers the course topic list (topics.txt) when present.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := resolveDataDir(cmd)
		loader := content.NewLoader(dataDir)

		lib, warnings, err := loader.Load()
		if err != nil {
			return fmt.Errorf("load study data: %w", err)
		}

		fmt.Printf("Loaded %d concepts and %d questions from %s\n",
			len(lib.Concepts), len(lib.Questions), dataDir)

		if len(warnings) == 0 {
			fmt.Println("No validation warnings.")
		} else {
			fmt.Printf("\n%d warning(s):\n", len(warnings))
			for _, w := range warnings {
				fmt.Printf("  - %s\n", w)
			}
		}

		required, err := content.ParseTopicsFile(filepath.Join(dataDir, "topics.txt"))
		if err != nil {
			return err
		}
		if len(required) == 0 {
			return nil
		}

		report := content.BuildTopicReport(required, lib.Concepts, lib.Questions)
		fmt.Printf("\nTopic coverage: %d/%d topics fully covered\n",
			report.FullyCovered, report.RequiredTopics)
		for _, d := range report.Details {
			mark := "✓"
			if !d.Covered() {
				mark = "✗"
			}
			fmt.Printf("  %s %-40s %3d concepts, %3d questions\n",
				mark, d.Topic, d.ConceptCount, d.QuestionCount)
		}
		if len(report.MissingConcepts) > 0 {
			fmt.Printf("\nTopics without concepts: %d\n", len(report.MissingConcepts))
		}
		if len(report.MissingQuestions) > 0 {
			fmt.Printf("Topics without questions: %d\n", len(report.MissingQuestions))
		}
		return nil
	},
}
