package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelance-directory/internal/app"
	"freelance-directory/internal/config"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Freelancer directory GraphQL server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	var out string
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the GraphQL introspection result as JSON",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			w := cmd.OutOrStdout()
			if out != "" {
				f, createErr := os.Create(out)
				if createErr != nil {
					return createErr
				}
				defer closeInto(&err, f, out)
				w = f
			}
			return writeSchema(cmd.Context(), w)
		},
	}
	schemaCmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")
	cmd.AddCommand(schemaCmd)

	return cmd
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("bootstrap app: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Server listening | addr=%s graphql=%s env=%s", addr, cfg.GraphQL.Path, cfg.App.Environment)
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
		logger.Printf("Server shutting down | timeout=%s", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return bootstrap.Fiber.ShutdownWithContext(shutdownCtx)
	}
}

// closeInto closes c and records its error in *err unless an earlier error
// is already there.
func closeInto(err *error, c io.Closer, name string) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close %s: %w", name, cerr)
	}
}

// writeSchema introspects an empty directory; the schema does not depend on
// stored data.
func writeSchema(ctx context.Context, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Config{}
	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, log.New(io.Discard, "", 0))
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	b, err := bootstrap.Container.Executor.Introspect(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
