package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexcodex/lenscope/lsp"
)

func newServersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "List known language servers and their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, desc := range lsp.Supported() {
				status := "missing"
				if path, err := exec.LookPath(desc.Command); err == nil {
					status = path
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\textensions: %s\t%s\n",
					desc.ID,
					desc.Command,
					strings.Join(desc.Extensions, ","),
					status,
				)
			}
			return nil
		},
	}
	return cmd
}
