package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ideal-jiwon/gongbu/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gongbu",
	Short: "Terminal study drill",
	Long:  "Gongbu — terminal study aid that quizzes you from pre-generated concept and question files and tracks which concepts you have covered.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the study data directory (overrides GONGBU_DATA env var, default \"data\")")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GONGBU_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using --data (highest
// priority), then GONGBU_DATA, then "data".
func resolveDataDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	if p := os.Getenv("GONGBU_DATA"); p != "" {
		return p
	}
	return "data"
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GONGBU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
