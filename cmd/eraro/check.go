package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xgx-io/eraro"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <config> [config...]",
		Short: "`check` validates factory configurations and their message templates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *multierror.Error
			for _, path := range args {
				cfg, err := eraro.LoadConfigFile(path)
				if err != nil {
					result = multierror.Append(result, err)
					continue
				}
				logrus.WithFields(logrus.Fields{
					"config":   path,
					"package":  cfg.Package,
					"messages": len(cfg.Messages),
				}).Debug("config ok")
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d messages)\n", path, len(cfg.Messages))
			}
			return result.ErrorOrNil()
		},
	}
}
