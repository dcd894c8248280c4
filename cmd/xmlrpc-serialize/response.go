package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResponseCmd(root *rootOptions) *cobra.Command {
	var paramsPath string
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print a methodResponse document for a single parameter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}
			params, err := e.readParams(cmd.InOrStdin(), paramsPath)
			if err != nil {
				e.logger.Error("reading params failed", "path", paramsPath, "error", err)
				return err
			}
			doc, err := e.encoder.MethodResponse(params)
			if err != nil {
				e.logger.Error("serialize failed", "params", len(params), "error", err)
				return err
			}
			e.logger.Debug("serialized methodResponse", "bytes", len(doc))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
			return err
		},
	}
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "YAML/JSON file holding a one-element list (default stdin)")
	return cmd
}
