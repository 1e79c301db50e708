package cmd

import (
	"fmt"
	"io"

	"asset-loader/core/asset"

	"github.com/spf13/cobra"
)

// loadersCmd lists the registered loaders.
var loadersCmd = &cobra.Command{
	Use:   "loaders",
	Short: "List registered asset loaders",
	Long:  `Lists loader keys in resolution order. Loaders without extension matching are only reachable by --type.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ld, _, err := newAssetLoader(cfg, logg)
		if err != nil {
			return err
		}
		printLoaders(cmd.OutOrStdout(), ld.Registry())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadersCmd)
}

func printLoaders(out io.Writer, reg *asset.Registry) {
	for _, d := range reg.Descriptors() {
		match := "by extension"
		if d.Match == nil {
			match = "by type only"
		}
		fmt.Fprintf(out, "%-8s %s\n", d.Key, match)
	}
}
