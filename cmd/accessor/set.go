package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"data-accessor/internal/document"
)

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Print the document with VALUE stored at PATH",
		Long: `Print the document with VALUE stored at PATH. VALUE is read as YAML, so
42 is a number, true a boolean and "{a: 1}" an object. Missing objects along
PATH are created. The input file is not modified.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path, raw := args[0], args[1], args[2]

			acc, err := a.accessor()
			if err != nil {
				return err
			}

			data, err := document.ReadFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out, err := acc.Set(data, path, document.ParseValue(raw))
			if err != nil {
				return errors.Wrapf(err, "set %s", path)
			}

			return a.write(cmd, file, out)
		},
	}
}
