package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrimthurs/Tackle/core/config"
	tkerrors "github.com/hrimthurs/Tackle/core/errors"
	tklog "github.com/hrimthurs/Tackle/core/log"
)

const envPrefix = "TACKLE"

// configDefaults apply to keys missing from the config file
var configDefaults = map[string]interface{}{
	"log.level":              "warn",
	"log.format":             "text",
	"decode.keys_lower_case": false,
	"decode.vals_lower_case": false,
	"decode.default_url":     "",
	"encode.percent":         false,
	"output.format":          formatJSON,
}

var configRules = config.ValidationRules{
	"log.level":              {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
	"log.format":             {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
	"decode.keys_lower_case": {Type: "bool"},
	"decode.vals_lower_case": {Type: "bool"},
	"decode.default_url":     {Type: "string"},
	"encode.percent":         {Type: "bool"},
	"output.format":          {Type: "string", OneOf: outputFormats},
}

// options holds the state shared by all commands of one invocation
type options struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *tklog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tackle",
		Short: "Structured URL query parameters",
		Long: `tackle reads and writes URL query parameters that carry lists,
maps and JSON values:

  ?flag               flag: true
  ?a=1,2,3            a: [1, 2, 3]
  ?a=x:1,y:2          a: {x: 1, y: 2}
  ?a={"k":[1,2]}      a: {k: [1, 2]}

Configuration is read from tackle.toml, tackle.yaml or tackle.json in the working
directory, $XDG_CONFIG_HOME/tackle or /etc/tackle. Every key can be
overridden with a TACKLE_ environment variable, e.g.
TACKLE_DECODE_DEFAULT_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: discovered tackle.toml, tackle.yaml or tackle.json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newDecodeCmd(opts),
		newEncodeCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the tackle command line and reports a failure on stderr,
// prefixed with the module and operation that raised it
func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", tkerrors.Describe(err))
	}
	return err
}

// setup loads and validates the configuration and builds the logger
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}

	level, err := tklog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return err
	}
	if o.verbose {
		level = tklog.LevelDebug
	}
	format, err := tklog.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = tklog.NewWithConfig(tklog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "tackle",
	})
	tklog.SetDefault(o.logger)

	o.logger.Debug("configuration loaded",
		tklog.String("file", cfg.FilePath()),
		tklog.String("level", level.String()))
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}

	discovery := config.DefaultDiscoveryOptions()
	discovery.EnvPrefix = envPrefix
	discovery.Defaults = configDefaults
	return config.Discover(discovery)
}
