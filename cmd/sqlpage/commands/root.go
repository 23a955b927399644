package commands

import (
	"github.com/ncobase/sqlpage/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "sqlpage",
		Short:         "Stateless token pagination over SQL, document and search backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "conf", "c", "", "config file (default: ./config.yaml)")

	rootCmd.AddCommand(
		newServeCommand(opts),
		newPageCommand(opts),
		newDumpCommand(opts),
		newTokenCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// loadConfig reads the file named by --conf and installs it as the global
// configuration so Watch and Reload see the same path.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	config.SetPath(o.configPath)
	return config.GetConfig()
}
