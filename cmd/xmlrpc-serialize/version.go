package main

import (
	"fmt"

	"github.com/spf13/cobra"

	xmlrpc "github.com/theoremus-urban-solutions/xmlrpc-serializer"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of xmlrpc-serialize",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xmlrpc-serialize version %s\n", xmlrpc.Version)
		},
	}
}
