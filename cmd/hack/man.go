package main

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

var manCmd = &cobra.Command{
	Use:    "man",
	Short:  "Generate man pages",
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		manPage, err := mcobra.NewManPage(1, rootCmd)
		if err != nil {
			return err
		}

		manPage = manPage.WithSection("Environment", "HACKHUB_DATA_PATH sets the data directory.\n"+
			"HACKHUB_USER sets the acting user of administrative commands.")
		fmt.Fprintln(cmd.OutOrStdout(), manPage.Build(roff.NewDocument()))
		return nil
	},
}
