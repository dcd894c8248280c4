package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/xmlrpc-serializer/config"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/internal/logging"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/serializer"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

type rootOptions struct {
	configPath string
	indent     string
	logLevel   string
}

// env is what every subcommand needs after flags and config are resolved
type env struct {
	encoder *serializer.Encoder
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "xmlrpc-serialize",
		Short: "Serialize parameters into XML-RPC documents",
		Long: `xmlrpc-serialize reads a YAML or JSON list of parameters and prints the
matching XML-RPC methodCall or methodResponse document on stdout.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: xmlrpc.yml or config.yml if present)")
	cmd.PersistentFlags().StringVar(&opts.indent, "indent", "", "indent string for pretty output (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	cmd.AddCommand(newCallCmd(opts), newResponseCmd(opts), newVersionCmd())
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadAppConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("indent") {
		cfg.Output.Indent = o.indent
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &env{
		encoder: serializer.NewEncoder(cfg.SerializerOptions()),
		logger:  logging.New(cmd.ErrOrStderr(), cfg.SlogLevel()),
	}, nil
}

// readParams loads the parameter list from path, or from stdin when path is
// empty or "-". Nesting beyond the encoder's depth limit is rejected here.
func (e *env) readParams(stdin io.Reader, path string) ([]value.Value, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read params: %w", err)
	}
	return value.FromYAMLDepth(data, e.encoder.Options().MaxDepth)
}
