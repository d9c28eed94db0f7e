package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexcodex/lenscope/lens"
	"github.com/lexcodex/lenscope/persistence"
)

func newScanCmd() *cobra.Command {
	var file string
	var language string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Annotate a file's declarations with implementation counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("file is required")
			}
			cfg, err := lens.LoadConfig(configPath())
			if err != nil {
				return err
			}
			logger := newLogger()
			gate, err := lens.NewFeatureGate(configPath())
			if err != nil {
				return err
			}
			watchReload(gate, logger)
			if !gate.Enabled() {
				cmd.Println("lenses are disabled by configuration")
				return nil
			}

			items, err := scanFile(cmd.Context(), cfg, flagWorkspace, file, language, logger)
			if err != nil {
				return err
			}

			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s (%s)\n",
					item.lens.Anchor.File,
					item.lens.Anchor.Range.Start.Line+1,
					item.result.Label,
					item.lens.Symbol,
				)
				for _, target := range item.result.Targets {
					fmt.Fprintf(cmd.OutOrStdout(), "\t-> %s:%d:%d\n",
						target.File,
						target.Range.Start.Line+1,
						target.Range.Start.Character+1,
					)
				}
			}

			return recordAudit(cmd, cfg, items)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "File to scan (required)")
	cmd.Flags().StringVar(&language, "lang", "", "Language key (default inferred from the file extension)")
	return cmd
}

func recordAudit(cmd *cobra.Command, cfg *lens.Config, items []resolvedLens) error {
	if cfg.Audit.Path == "" {
		return nil
	}
	store, err := persistence.NewAuditStore(cfg.Audit.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	for _, item := range items {
		rec := persistence.Record{
			File:      item.lens.Anchor.File,
			Line:      item.lens.Anchor.Range.Start.Line,
			Character: item.lens.Anchor.Range.Start.Character,
			Symbol:    item.lens.Symbol,
			Label:     item.result.Label,
			Targets:   len(item.result.Targets),
			Outcome:   item.outcome.String(),
		}
		if err := store.Append(cmd.Context(), rec); err != nil {
			return err
		}
	}
	return nil
}
