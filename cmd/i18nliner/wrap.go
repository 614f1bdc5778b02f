package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18nliner/pkg/callhelpers"
)

var errNoWrappers = errors.New("at least one wrapper template or --named wrapper is required")

func newWrapCmd(a *app) *cobra.Command {
	var (
		named map[string]string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "wrap <text> [template...]",
		Short: "Apply wrapper templates to delimited spans of text",
		Long: `Positional templates are bound to delimiters of increasing depth: the first
template wraps *text*, the second **text** and so on. Named wrappers bind an
explicit delimiter. Templates use $1 for the enclosed text and $& for the
whole match.`,
		Example: `  i18nliner wrap "Click *here*" '<a href="/">$1</a>'
  i18nliner wrap "**Save** or *cancel*" '<i>$1</i>' '<b>$1</b>'
  i18nliner wrap "Read _the terms_" --named '_=<u>$1</u>'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := args[1:]

			var wrappers callhelpers.Wrappers
			switch {
			case len(named) > 0 && len(templates) > 0:
				return fmt.Errorf("positional templates and --named cannot be combined")
			case len(named) > 0:
				ws := make(map[string]callhelpers.Wrapper, len(named))
				for delim, tmpl := range named {
					ws[delim] = callhelpers.Template(tmpl)
				}
				wrappers = callhelpers.Named(ws)
			case len(templates) > 0:
				wrappers = callhelpers.Templates(templates...)
			default:
				return errNoWrappers
			}

			apply := callhelpers.ApplyWrappers
			if all {
				apply = callhelpers.ApplyWrappersAll
			}
			a.log.DebugContext(cmd.Context(), "applying wrappers", "templates", len(templates), "named", len(named), "all", all)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), apply(args[0], wrappers))
			return err
		},
	}

	cmd.Flags().StringToStringVar(&named, "named", nil, "delimiter=template pairs")
	cmd.Flags().BoolVar(&all, "all", false, "wrap every delimited span, not only the first")
	return cmd
}
