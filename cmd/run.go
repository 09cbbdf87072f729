package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideal-jiwon/gongbu/internal/app"
	"github.com/ideal-jiwon/gongbu/internal/content"
	"github.com/ideal-jiwon/gongbu/internal/eval"
	"github.com/ideal-jiwon/gongbu/internal/store"
)

// runApp loads the study data, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	loader := content.NewLoader(resolveDataDir(cmd))
	lib, warnings, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load study data: %w", err)
	}

	cfg, err := eval.LoadConfig(loader.TemplatesPath())
	if err != nil {
		return fmt.Errorf("load feedback templates: %w", err)
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

	return app.Run(app.Options{
		Library:  lib,
		Config:   cfg,
		Repo:     st,
		Warnings: warnings,
	})
}
