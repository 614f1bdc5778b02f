package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18nliner/pkg/callhelpers"
	"github.com/dmitrymomot/i18nliner/pkg/i18n"
	"github.com/dmitrymomot/i18nliner/pkg/logger"
	"github.com/dmitrymomot/i18nliner/pkg/sanitizer"
)

const previewLength = 60

var textPreview = sanitizer.Compose(
	sanitizer.RemoveControlChars,
	sanitizer.SingleLine,
	sanitizer.MaxLength(previewLength),
)

type keyResult struct {
	Key      string         `json:"key" yaml:"key"`
	Inferred bool           `json:"inferred" yaml:"inferred"`
	Options  map[string]any `json:"options" yaml:"options"`
}

func newKeyCmd(a *app) *cobra.Command {
	var (
		count  float64
		format string
		length int
		output string
	)

	cmd := &cobra.Command{
		Use:   "key <text>",
		Short: "Print the translation key inferred from default text",
		Example: `  i18nliner key "Hello world"
  i18nliner key cat --count 3 -o json
  i18nliner key "Hello world" --format underscored --length 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.normalizer(format, length)
			if err != nil {
				return err
			}

			call := []callhelpers.Value{callhelpers.String(args[0])}
			if cmd.Flags().Changed("count") {
				call = append(call, callhelpers.MapValue(callhelpers.MapOf(i18n.CountOption, count)))
			}

			var meta callhelpers.Meta
			out, err := n.InferArguments(call, &meta)
			if err != nil {
				return err
			}
			key := out[0].Str()
			a.log.DebugContext(cmd.Context(), "key resolved",
				logger.Key(key),
				slog.String("text", textPreview(args[0])),
				slog.Bool("inferred", meta.InferredKey),
			)

			res := keyResult{Key: key, Inferred: meta.InferredKey, Options: out[1].Map().ToAny()}
			return render(cmd.OutOrStdout(), output, res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Key)
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&count, "count", 0, "count passed in the translate options")
	cmd.Flags().StringVar(&format, "format", "", "inferred key format: raw, underscored or underscored_crc32")
	cmd.Flags().IntVar(&length, "length", 0, "maximum length of the underscored part of the key")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}
