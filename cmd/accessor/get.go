package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"data-accessor/internal/document"
	"data-accessor/kind"
	"data-accessor/utils"
)

func newGetCmd(a *app) *cobra.Command {
	var (
		def    string
		target string
	)

	cmd := &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at PATH",
		Example: `  accessor get config.json server/port
  accessor get config.yaml server/port --as string --default 8080`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path := args[0], args[1]

			acc, err := a.accessor()
			if err != nil {
				return err
			}

			as, err := kind.Parse(target)
			if err != nil {
				return errors.Wrap(err, "invalid --as")
			}

			data, err := document.ReadFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var fallback any
			if cmd.Flags().Changed("default") {
				fallback = document.ParseValue(def)
			}

			value, err := acc.GetAs(data, path, fallback, as)
			if err != nil {
				return errors.Wrapf(err, "get %s", path)
			}

			return a.write(cmd, file, value)
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "value printed when PATH does not exist (parsed as YAML)")
	cmd.Flags().StringVar(&target, "as", "", fmt.Sprintf("coerce the value, one of %v", kind.All()))

	return cmd
}

func newHasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "has FILE PATH",
		Short: "Print whether PATH exists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.accessor()
			if err != nil {
				return err
			}

			data, err := document.ReadFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			return utils.Second(fmt.Fprintln(cmd.OutOrStdout(), acc.Has(data, args[1])))
		},
	}
}
