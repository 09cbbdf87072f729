package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ideal-jiwon/gongbu/internal/content"
	"github.com/ideal-jiwon/gongbu/internal/coverage"
	"github.com/ideal-jiwon/gongbu/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print coverage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := content.NewLoader(resolveDataDir(cmd))
		lib, _, err := loader.Load()
		if err != nil {
			return fmt.Errorf("load study data: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		var prior map[string][]string
		latest, err := st.LatestProgress(ctx)
		if err != nil {
			return fmt.Errorf("load saved progress: %w", err)
		}
		if latest != nil {
			prior = latest.Coverage
		}

		tracker := coverage.NewTracker(lib.Concepts, prior)
		stats := tracker.Stats()

		fmt.Printf("Concepts:  %d/%d tested (%.1f%%)\n",
			stats.TestedConcepts, stats.TotalConcepts, stats.CoveragePercent)

		count, err := st.AnswerCount(ctx)
		if err != nil {
			return fmt.Errorf("count answers: %w", err)
		}
		fmt.Printf("Answers:   %d recorded\n", count)

		if len(stats.ByTopic) > 0 {
			fmt.Println("\nBy topic:")
			topicNames := make([]string, 0, len(stats.ByTopic))
			for topic := range stats.ByTopic {
				topicNames = append(topicNames, topic)
			}
			sort.Strings(topicNames)
			for _, topic := range topicNames {
				fmt.Printf("  %-40s %5.1f%%\n", topic, stats.ByTopic[topic])
			}
		}

		if len(stats.UntestedTopics) > 0 {
			fmt.Println("\nUntested topics:")
			for _, topic := range stats.UntestedTopics {
				fmt.Printf("  %s\n", topic)
			}
		}

		if stats.Complete() {
			fmt.Println("\nEvery concept has been tested.")
		}
		return nil
	},
}
