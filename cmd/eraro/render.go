package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xgx-io/eraro"
	"gopkg.in/yaml.v3"
)

func newRenderCmd() *cobra.Command {
	var (
		code    string
		message string
		sets    []string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "render <config>",
		Short: "`render` builds an error from a configuration and prints it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := eraro.LoadConfigFile(args[0])
			if err != nil {
				return err
			}
			details, err := parseSets(sets)
			if err != nil {
				return err
			}

			f := eraro.NewFromConfig(cfg)
			e := f.Build(eraro.Raw{Code: eraro.Code(code), Message: message, Details: details})

			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "%+v\n", e)
				return nil
			}
			fmt.Fprintln(out, e.Error())
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "error code")
	cmd.Flags().StringVar(&message, "message", "", "message template (defaults to the catalog entry)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "detail as key=value; the value is parsed as YAML")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print code, details and stack")
	return cmd
}

// parseSets turns key=value flags into details. Values are YAML, so numbers,
// booleans, lists and maps keep their types.
func parseSets(sets []string) (map[string]any, error) {
	details := make(map[string]any, len(sets))
	for _, s := range sets {
		k, raw, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		details[k] = v
	}
	return details, nil
}
