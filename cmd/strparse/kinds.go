package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/strparse"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, kind := range strparse.Kinds() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), kind.String()); err != nil {
				return err
			}
		}
		return nil
	},
}
