package app

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoRandomString/GoRandomString/internal/config"
	"github.com/GoRandomString/GoRandomString/internal/generator"
	"github.com/GoRandomString/GoRandomString/internal/metrics"
	"github.com/GoRandomString/GoRandomString/internal/secret"
)

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(newGenerateCmd())
}

type generateOptions struct {
	characters      string
	preset          string
	length          int
	keepDuplicates  bool
	count           int
	hash            string
	metricsTextfile string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random strings",
		Long: `Print random strings drawn from --characters or a --preset.
Without either, the length, the preset and the duplicate handling come from the
[generator] section of the config, or the built-in defaults if there is no config file.
Duplicate characters are ignored unless duplicates are kept, in which case
every occurrence adds weight to its character.`,
		Example: `  go-randomstring generate -c abc -l 5
  go-randomstring generate -p hex -l 32 -n 3
  go-randomstring generate -l 24 --hash argon2id`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initCLILogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.characters, "characters", "c", "", "Character set to draw from")
	flags.StringVarP(&opts.preset, "preset", "p", "",
		"Named character set, one of "+strings.Join(generator.PresetNames(), ", "))
	flags.IntVarP(&opts.length, "length", "l", generator.StdLen,
		"Length of every random string, generator.defaultLength of the config if unset")
	flags.BoolVar(&opts.keepDuplicates, "keep-duplicates", false,
		"Keep duplicate characters as extra weight, !generator.ignoreDuplicates of the config if unset")
	flags.IntVarP(&opts.count, "count", "n", 1, "Number of random strings")
	flags.StringVar(&opts.hash, "hash", "", "Also print a hash of every string (argon2id or bcrypt)")
	flags.StringVar(&opts.metricsTextfile, "metrics-textfile", "",
		"Write generation metrics to this file for the node_exporter textfile collector")

	cmd.MarkFlagsMutuallyExclusive("characters", "preset")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	err := generate(cmd, opts, rec)
	if err != nil {
		rec.Rejected(metrics.SourceCLI, errorKind(err))
	}

	if opts.metricsTextfile != "" {
		if werr := prometheus.WriteToTextfile(opts.metricsTextfile, reg); werr != nil {
			log.Error().Err(werr).Str("file", opts.metricsTextfile).Msg("failed to write metrics textfile")
		}
	}

	return err
}

// generatorDefaults reads the generator section of the config. A missing config
// file falls back to the built-in defaults.
func generatorDefaults() (config.GeneratorOpts, error) {
	cfg, err := config.ReadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", configPath).Msg("no config file, using generator defaults")

		return config.Default().Generator, nil
	}

	if err != nil {
		return config.GeneratorOpts{}, err //nolint:wrapcheck
	}

	return cfg.Generator, nil
}

// toRequest resolves the flags against the configured defaults.
func toRequest(cmd *cobra.Command, opts *generateOptions, defaults config.GeneratorOpts) (generator.Request, error) {
	flags := cmd.Flags()

	req := generator.Request{
		Length:           defaults.DefaultLength,
		IgnoreDuplicates: defaults.IgnoreDuplicates,
	}

	if flags.Changed("length") {
		req.Length = opts.length
	}

	if flags.Changed("keep-duplicates") {
		req.IgnoreDuplicates = !opts.keepDuplicates
	}

	// an explicitly empty --characters is passed on and rejected by the generator.
	if flags.Changed("characters") {
		req.Characters = opts.characters

		return req, nil
	}

	preset := opts.preset
	if preset == "" {
		preset = defaults.DefaultPreset
	}

	chars, err := generator.PresetChars(preset)
	if err != nil {
		return req, errors.Wrapf(err, "%q", preset)
	}

	req.Characters = chars

	return req, nil
}

func generate(cmd *cobra.Command, opts *generateOptions, rec *metrics.Recorder) error {
	if opts.count < 1 {
		return ErrCountTooSmall
	}

	var algo secret.Algorithm

	if opts.hash != "" {
		var err error
		if algo, err = secret.ParseAlgorithm(opts.hash); err != nil {
			return err //nolint:wrapcheck
		}
	}

	defaults, err := generatorDefaults()
	if err != nil {
		return err
	}

	req, err := toRequest(cmd, opts, defaults)
	if err != nil {
		return err
	}

	cs, err := req.Validate()
	if err != nil {
		return err //nolint:wrapcheck
	}

	if algo != "" {
		if err := secret.CheckLength(algo, cs.MaxBytes(req.Length)); err != nil {
			return err //nolint:wrapcheck
		}
	}

	values := make([]string, opts.count)

	for i := range values {
		if values[i], err = generator.FromCharset(cs, req.Length); err != nil {
			return err //nolint:wrapcheck
		}
	}

	rec.Generated(metrics.SourceCLI, req.Length, len(values))
	log.Debug().Int("count", len(values)).Int("length", req.Length).Msg("generated random strings")

	out := cmd.OutOrStdout()

	for _, v := range values {
		if algo == "" {
			_, _ = fmt.Fprintln(out, v)
			continue
		}

		h, err := secret.Hash(v, algo)
		if err != nil {
			return err //nolint:wrapcheck
		}

		_, _ = fmt.Fprintf(out, "%s\t%s\n", v, h)
	}

	return nil
}

// errorKind labels CLI failures like the http api does.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrCountTooSmall),
		errors.Is(err, secret.ErrUnknownAlgorithm),
		errors.Is(err, secret.ErrValueTooLong):
		return metrics.KindInvalidRequest
	default:
		return generator.Kind(err)
	}
}
