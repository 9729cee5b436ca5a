package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hexclusters/internal/export"
)

func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [input.csv]",
		Short: "Lay out the input and write the snapshot and HTML page",
		Long: `Export loads the input exactly as the interactive board would, places every tile
on the starting grid and writes the PNG snapshot and the HTML page that shows it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			_, sc, err := c.loadBoard(cfg, inputPath(args))
			if err != nil {
				return err
			}
			res, err := export.New(cfg, c.Logger).Export(sc.Items())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Snapshot)
			fmt.Fprintln(cmd.OutOrStdout(), res.Page)
			return nil
		},
	}
}
