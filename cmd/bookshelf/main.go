// Command bookshelf serves a CRUD API for books backed by MongoDB or, when no
// MongoDB URI is configured, an in-memory store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drblury/docweaver/config"
)

var (
	version = buildVersion()
	commit  = ""
)

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "bookshelf",
		Short:         "CRUD API for books",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(newServeCmd(v, &configFile), newVersionCmd())
	return rootCmd
}

func newServeCmd(v *viper.Viper, configFile *string) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, *configFile)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			srv, err := newServer(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	flags := serveCmd.Flags()
	flags.String("addr", "", "listen address (http.addr)")
	flags.String("mongo-uri", "", "MongoDB connection string, empty for the in-memory store (mongo.uri)")
	flags.String("log-level", "", "debug, info, warn or error (log.level)")
	flags.String("docs-ui", "", "stoplight, scalar, swaggerui or redoc (docs.ui)")
	// Unset flags fall through to file, environment and defaults.
	for key, name := range map[string]string{
		"http.addr": "addr",
		"mongo.uri": "mongo-uri",
		"log.level": "log-level",
		"docs.ui":   "docs-ui",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return serveCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bookshelf %s\n", versionString())
		},
	}
}

func versionString() string {
	if commit == "" {
		return version
	}
	return version + " (" + commit + ")"
}
