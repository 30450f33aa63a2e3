package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridwell/overlaykit/internal/paneldef"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definition.yaml>",
		Short: "Check a panel definition file without launching the demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := paneldef.Parse(args[0])
			if err != nil {
				return err
			}

			controls := 0
			for _, p := range doc.Panels {
				controls += len(p.Controls)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d panel(s), %d control binding(s)\n",
				doc.Name, len(doc.Panels), controls)
			return nil
		},
	}

	return cmd
}
