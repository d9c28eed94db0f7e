package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lexcodex/lenscope/lens"
)

var (
	flagWorkspace string
	flagConfig    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lenscope",
		Short: "Implementation code lenses from the command line",
	}
	root.PersistentFlags().StringVar(&flagWorkspace, "workspace", ".", "Workspace root for language servers")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to lenscope.yaml (default <workspace>/lenscope.yaml)")

	root.AddCommand(newScanCmd(), newBrowseCmd(), newServersCmd(), newAuditCmd())
	return root
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return lens.DefaultConfigPath(flagWorkspace)
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "lenscope ", log.LstdFlags)
}

// watchReload re-reads the feature gate when the process receives SIGHUP,
// the conventional config-change notification for a long-running command.
func watchReload(gate *lens.FeatureGate, logger *log.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP)
	go func() {
		for range ch {
			if err := gate.Reload(); err != nil {
				logger.Printf("config reload: %v", err)
			}
		}
	}()
}
