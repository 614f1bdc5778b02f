package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18nliner/pkg/i18n"
	"github.com/dmitrymomot/i18nliner/pkg/logger"
)

func newTranslateCmd(a *app) *cobra.Command {
	var (
		key      string
		locale   string
		catalog  string
		count    float64
		vars     map[string]string
		wrappers []string
		strict   bool
		html     bool
	)

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Resolve a translate call against a YAML or JSON catalog",
		Long: `translate runs the call through the same normalization as key, looks the key
up in the catalog for the requested locale and falls back to the text itself.
--catalog accepts a single file or a directory of .yaml, .yml and .json files.`,
		Example: `  i18nliner translate "Hello world" --catalog locales --locale de
  i18nliner translate cat --count 3
  i18nliner translate "Hi %{name}" --key greeting.hi --var name=Ann`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if locale == "" {
				locale = a.cfg.Locale
			}
			if catalog == "" {
				catalog = a.cfg.Catalog
			}
			ctx := i18n.SetLocale(cmd.Context(), locale)

			n, err := a.normalizer("", 0)
			if err != nil {
				return err
			}
			adapter, err := catalogAdapter(a, catalog)
			if err != nil {
				return err
			}
			tr, err := i18n.NewTranslator(ctx, adapter,
				i18n.WithLogger(a.log.With(logger.Component("translator"))),
				i18n.WithMissingTranslationsLogging(true),
				i18n.WithFallbackToKey(!strict),
				i18n.WithNormalizer(n),
				i18n.WithHTMLEscaping(html),
			)
			if err != nil {
				return err
			}

			options := make(map[string]any, len(vars)+2)
			for k, v := range vars {
				options[k] = v
			}
			if cmd.Flags().Changed("count") {
				options[i18n.CountOption] = count
			}
			switch len(wrappers) {
			case 0:
			case 1:
				options[i18n.WrapperOption] = wrappers[0]
			default:
				options[i18n.WrapperOption] = wrappers
			}

			call := []any{args[0], options}
			if key != "" {
				call = []any{key, args[0], options}
			}

			out, err := tr.Tc(ctx, call...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "explicit translation key; the text becomes its default")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale to translate into (default from I18NLINER_LOCALE)")
	cmd.Flags().StringVarP(&catalog, "catalog", "c", "", "catalog file or directory (default from I18NLINER_CATALOG)")
	cmd.Flags().Float64Var(&count, "count", 0, "count used for pluralization")
	cmd.Flags().StringToStringVar(&vars, "var", nil, "interpolation values as name=value")
	cmd.Flags().StringArrayVarP(&wrappers, "wrapper", "w", nil, "wrapper template, repeat for deeper delimiters")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of printing the key when nothing matches")
	cmd.Flags().BoolVar(&html, "html", false, "escape text and values as HTML before wrappers are applied")
	return cmd
}

// catalogAdapter picks an adapter for path; an empty path means defaults only.
func catalogAdapter(a *app, path string) (i18n.TranslationAdapter, error) {
	if path == "" {
		return &i18n.MapAdapter{}, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	if info.IsDir() {
		return i18n.NewDirectoryAdapter(nil, path).WithLogger(a.log), nil
	}
	return i18n.NewFileAdapter(nil, path), nil
}
