package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexcodex/lenscope/lens"
	"github.com/lexcodex/lenscope/persistence"
)

func newAuditCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent lens resolutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := lens.LoadConfig(configPath())
			if err != nil {
				return err
			}
			if cfg.Audit.Path == "" {
				return errors.New("no audit store configured (set audit.path in lenscope.yaml)")
			}
			store, err := persistence.NewAuditStore(cfg.Audit.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s:%d\t%s\t%s\ttargets=%d\t%s\n",
					rec.CreatedAt.Format(time.RFC3339),
					rec.File,
					rec.Line+1,
					rec.Symbol,
					rec.Outcome,
					rec.Targets,
					rec.Label,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records to show")
	return cmd
}
