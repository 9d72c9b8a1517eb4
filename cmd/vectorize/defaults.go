package main

import (
	"github.com/BurntSushi/toml"
	vectorize "github.com/dalefugier/Vectorize"
	"github.com/spf13/cobra"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default parameters as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var ms vectorize.MapStore
		vectorize.DefaultParams().Save(&ms)
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(ms.Map())
	},
}
