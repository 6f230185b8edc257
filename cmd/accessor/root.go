package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"data-accessor/accessor"
	"data-accessor/internal/document"
	"data-accessor/kind"
	"data-accessor/transformer"
	"data-accessor/utils"
)

const (
	keySeparator = "separator"
	keyConfig    = "config"
	keyOutput    = "output"
	keyMap       = "map"
	keyDebug     = "debug"
)

// app carries the settings shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "accessor",
		Short:         "Read and write values at delimited paths of JSON and YAML documents.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger.SetOutput(cmd.ErrOrStderr())
			a.logger.SetLevel(logrus.InfoLevel)
			if a.v.GetBool(keyDebug) {
				a.logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(keySeparator, "s", "/", "path separator")
	flags.StringP(keyConfig, "c", "", "transformer chain file (YAML)")
	flags.StringP(keyOutput, "o", "", "output format, json or yaml (default: format of the input)")
	flags.StringSlice(keyMap, nil, "remap canonical types of the basic converter, e.g. string=boolean")
	flags.BoolP(keyDebug, "d", false, "turn on debug logging")

	for _, key := range []string{keySeparator, keyConfig, keyOutput, keyMap, keyDebug} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	a.v.SetEnvPrefix("ACCESSOR")
	a.v.AutomaticEnv()

	rootCmd.AddCommand(newGetCmd(a), newHasCmd(a), newSetCmd(a))

	return rootCmd
}

// accessor builds the accessor from flags, environment and chain file.
func (a *app) accessor() (*accessor.Accessor, error) {
	separator := a.v.GetString(keySeparator)
	if separator == "" {
		return nil, errors.New("separator must not be empty")
	}

	t, err := a.transformer()
	if err != nil {
		return nil, err
	}

	return accessor.New(accessor.Config{
		Separator:   separator,
		Transformer: t,
		Logger:      a.logger,
	}), nil
}

func (a *app) transformer() (transformer.Transformer, error) {
	if path := a.v.GetString(keyConfig); path != "" {
		cfg, err := transformer.LoadFile(path)
		if err != nil {
			return nil, err
		}

		t, err := cfg.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid chain file %s", path)
		}

		a.logger.WithField("file", path).Debug("loaded transformer chain")

		return t, nil
	}

	remaps := a.v.GetStringSlice(keyMap)
	if len(remaps) == 0 {
		return transformer.Default(), nil
	}

	typeMap := make(map[kind.Type]kind.Type, len(remaps))
	for _, remap := range remaps {
		from, to := utils.Unpack2(strings.SplitN(remap, "=", 2))

		f, err := kind.Parse(from)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --map %q", remap)
		}

		t, err := kind.Parse(to)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --map %q", remap)
		}

		if !f.IsValid() || !t.IsValid() {
			return nil, errors.Errorf("invalid --map %q: expected from=to", remap)
		}

		typeMap[f] = t
	}

	return transformer.NewBasicTypeConverter(typeMap), nil
}

// outputFormat is the --output format, or the format of the input file.
func (a *app) outputFormat(input string) (document.Format, error) {
	if name := a.v.GetString(keyOutput); name != "" {
		return document.ParseFormat(name)
	}

	return document.FormatOf(input), nil
}

func (a *app) write(cmd *cobra.Command, input string, v any) error {
	format, err := a.outputFormat(input)
	if err != nil {
		return err
	}

	data, err := document.Encode(v, format)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
