package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/l1t/internal/platform/tui"
	"github.com/vovakirdan/l1t/internal/storage"
)

const reportInterval = 15 * time.Minute

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the l1t SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level menu.
Progress is stored per SSH user name in the server's database.

Examples:
  l1t serve                           # Listen on the configured address
  l1t serve --ssh :2222               # Listen on port 2222
  l1t serve --host-key ./my_host_key  # Use specific host key
  l1t serve --db ./progress.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     e.cfg.Server.Address,
		HostKeyPath: e.cfg.Server.HostKey,
		IdleTimeout: e.cfg.Server.IdleTimeout,
		Runtime:     e.cfg.Runtime(80, 24),
		Theme:       e.cfg.Display.Theme,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	store := e.openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, e.levels, store, e.logger.WithPrefix("l1t-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})
	if store != nil {
		g.Go(func() error {
			reportProgress(ctx, e, store)
			return nil
		})
	}

	fmt.Printf("Starting l1t SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// reportProgress logs the number of completions recorded by the server
// every reportInterval until ctx is done.
func reportProgress(ctx context.Context, e *env, store *storage.Store) {
	ticker := time.NewTicker(reportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats, err := store.Stats("")
			if err != nil {
				e.logger.Warn("could not read progress", "err", err)
				continue
			}
			wins := 0
			for _, st := range stats {
				wins += st.Completions
			}
			e.logger.Info("progress", "levels_won", len(stats), "levels", len(e.levels), "completions", wins)
		}
	}
}
