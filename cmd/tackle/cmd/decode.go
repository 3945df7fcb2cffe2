package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	tkerrors "github.com/hrimthurs/Tackle/core/errors"
	tklog "github.com/hrimthurs/Tackle/core/log"
	"github.com/hrimthurs/Tackle/utils/slicex"
	"github.com/hrimthurs/Tackle/utils/urlx"
)

func newDecodeCmd(root *options) *cobra.Command {
	var (
		keysLower bool
		valsLower bool
		output    string
		omit      []string
		sortKeys  bool
		locale    string
		precision int
	)

	decodeCmd := &cobra.Command{
		Use:   "decode [URL]",
		Short: "Decode the query of a URL",
		Long: `Decode the query of a URL and print it as JSON, YAML or TOML.

Without a URL the configured default URL (decode.default_url or
TACKLE_DECODE_DEFAULT_URL) is decoded. A string that is not an absolute
URL decodes to an empty result.`,
		Example: `  tackle decode 'https://example.com/?page=2&tags=go,url'
  tackle decode -o yaml --keys-lower 'https://example.com/?Size=w:640,h:480'
  tackle decode --omit token --sort --locale sv 'https://example.com/?token=x&zebra=1&öl=2'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg

			if !cmd.Flags().Changed("keys-lower") {
				keysLower = cfg.GetBool("decode.keys_lower_case")
			}
			if !cmd.Flags().Changed("vals-lower") {
				valsLower = cfg.GetBool("decode.vals_lower_case")
			}
			if output == "" {
				output = cfg.GetString("output.format", formatJSON)
			}

			opts := []urlx.DecoderOption{
				urlx.WithKeysLowerCase(keysLower),
				urlx.WithValsLowerCase(valsLower),
				urlx.WithLogger(root.logger.WithName("urlx")),
			}
			if defaultURL := cfg.GetString("decode.default_url"); defaultURL != "" {
				opts = append(opts, urlx.WithDefaultURL(urlx.StaticURL(defaultURL)))
			}

			var src string
			if len(args) == 1 {
				src = args[0]
			}

			params, err := urlx.NewDecoder(opts...).Decode(src)
			if err != nil {
				return err
			}
			root.logger.Debug("query decoded", tklog.Int("params", params.Len()))

			if len(omit) > 0 || sortKeys {
				tag, err := language.Parse(locale)
				if err != nil {
					return tkerrors.InvalidInput(tkerrors.ModuleCLI, "decode", locale, "BCP 47 language tag")
				}
				params = selectParams(params, omit, sortKeys, tag)
			}
			if precision >= 0 {
				params = params.Round(precision)
			}

			out, err := render(params, output)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	decodeCmd.Flags().BoolVar(&keysLower, "keys-lower", false, "lower-case parameter names")
	decodeCmd.Flags().BoolVar(&valsLower, "vals-lower", false, "lower-case parameter values")
	decodeCmd.Flags().StringVarP(&output, "output", "o", "", "output format: json, yaml or toml (default from output.format)")
	decodeCmd.Flags().StringSliceVar(&omit, "omit", nil, "leave out these parameters")
	decodeCmd.Flags().BoolVar(&sortKeys, "sort", false, "print parameters sorted by name instead of query order")
	decodeCmd.Flags().StringVar(&locale, "locale", "und", "collation used by --sort")
	decodeCmd.Flags().IntVar(&precision, "precision", -1, "round fractional numbers to this many decimals")
	return decodeCmd
}

// selectParams drops the omitted names and, with sortKeys, orders the rest
// by the collation of tag
func selectParams(params *urlx.Params, omit []string, sortKeys bool, tag language.Tag) *urlx.Params {
	keys := slicex.Exclude(params.Keys(), omit...)
	if sortKeys {
		keys = slicex.SortStrings(keys, tag)
	}

	out := urlx.NewParams()
	for _, k := range keys {
		v, _ := params.Get(k)
		out.Set(k, v)
	}
	return out
}
