package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/i18nliner/pkg/callhelpers"
	"github.com/dmitrymomot/i18nliner/pkg/config"
	"github.com/dmitrymomot/i18nliner/pkg/i18n"
	"github.com/dmitrymomot/i18nliner/pkg/logger"
)

const (
	serviceName  = "i18nliner"
	keyCacheSize = 256
)

// cliConfig holds settings that only the command needs. Key inference
// settings live in callhelpers.Config.
type cliConfig struct {
	Env       string     `env:"I18NLINER_ENV" envDefault:"development"`
	LogFormat string     `env:"I18NLINER_LOG_FORMAT" envDefault:"text"`
	LogLevel  slog.Level `env:"I18NLINER_LOG_LEVEL" envDefault:"warn"`
	Catalog   string     `env:"I18NLINER_CATALOG"`
	Locale    string     `env:"I18NLINER_LOCALE" envDefault:"en"`
}

// app carries state shared by subcommands once PersistentPreRunE has run.
type app struct {
	envFiles  []string
	logFormat string
	verbose   bool

	cfg     cliConfig
	helpers callhelpers.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   serviceName,
		Short: "Infer i18nliner translation keys and render translate calls",
		Long: `i18nliner normalizes translate call arguments the way the i18nliner
extractor does: it infers keys from default strings, expands bare words into
pluralization hashes and applies wrapper templates.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "load environment variables from these .env files first")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json (default from I18NLINER_LOG_FORMAT)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newKeyCmd(a),
		newWrapCmd(a),
		newTranslateCmd(a),
		newVersionCmd(),
	)
	root.SetGlobalNormalizationFunc(dashedFlags)
	return root
}

// dashedFlags accepts --log_format for --log-format.
func dashedFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
		config.ResetCache()
	}

	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("loading cli config: %w", err)
	}
	if err := config.Load(&a.helpers); err != nil {
		return fmt.Errorf("loading key inference config: %w", err)
	}

	format := a.cfg.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}
	logFormat, err := logger.ParseFormat(format)
	if err != nil {
		return err
	}

	level := a.cfg.LogLevel
	if a.verbose {
		level = slog.LevelDebug
	}

	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFormat(logFormat),
		logger.WithLevel(level),
		logger.WithAttr(logger.Command(cmd.Name())),
		logger.WithContextExtractors(i18n.LocaleExtractor),
	)
	a.log.DebugContext(cmd.Context(), "configuration loaded",
		logger.KeyFormat(a.helpers.InferredKeyFormat),
		slog.Int("underscored_key_length", a.helpers.UnderscoredKeyLength),
		slog.Bool("allow_blank_default", a.helpers.AllowBlankDefault),
	)
	return nil
}

// normalizer builds a normalizer from the loaded config with flag overrides.
func (a *app) normalizer(format string, length int) (*callhelpers.Normalizer, error) {
	opts := []callhelpers.Option{
		callhelpers.WithConfig(a.helpers),
		callhelpers.WithLogger(a.log.With(logger.Component("callhelpers"))),
		callhelpers.WithKeyCache(keyCacheSize),
	}
	if format != "" {
		kf, err := callhelpers.ParseKeyFormat(format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, callhelpers.WithKeyFormat(kf))
	}
	if length > 0 {
		opts = append(opts, callhelpers.WithUnderscoredKeyLength(length))
	}
	return callhelpers.NewNormalizer(opts...), nil
}
