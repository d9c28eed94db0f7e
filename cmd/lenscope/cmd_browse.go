package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lexcodex/lenscope/lens"
	"github.com/lexcodex/lenscope/tui"
)

func newBrowseCmd() *cobra.Command {
	var file string
	var language string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a file's lenses interactively",
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

			scan := func(ctx context.Context) ([]tui.Item, error) {
				if !gate.Enabled() {
					return nil, errors.New("lenses are disabled by configuration")
				}
				resolved, err := scanFile(ctx, cfg, flagWorkspace, file, language, logger)
				if err != nil {
					return nil, err
				}
				items := make([]tui.Item, 0, len(resolved))
				for _, item := range resolved {
					items = append(items, tui.Item{
						Lens:    item.lens,
						Result:  item.result,
						Outcome: item.outcome,
					})
				}
				return items, nil
			}
			return tui.Run(cmd.Context(), file, scan)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "File to browse (required)")
	cmd.Flags().StringVar(&language, "lang", "", "Language key (default inferred from the file extension)")
	return cmd
}
