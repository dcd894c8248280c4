package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCallCmd(root *rootOptions) *cobra.Command {
	var paramsPath string
	cmd := &cobra.Command{
		Use:   "call <methodName>",
		Short: "Print a methodCall document",
		Args:  cobra.ExactArgs(1),
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
			doc, err := e.encoder.MethodCall(args[0], params)
			if err != nil {
				e.logger.Error("serialize failed", "method", args[0], "error", err)
				return err
			}
			e.logger.Debug("serialized methodCall", "method", args[0], "params", len(params), "bytes", len(doc))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
			return err
		},
	}
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "YAML/JSON file holding a list of parameters (default stdin)")
	return cmd
}
