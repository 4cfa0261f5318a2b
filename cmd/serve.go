package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathtutor/internal/catalog"
	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/logging"
	"github.com/abhisek/mathtutor/internal/server"
	"github.com/abhisek/mathtutor/internal/store"
	"github.com/abhisek/mathtutor/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tutoring API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8052", "Listen address")
	serveCmd.Flags().String("problems", "", "Path to problems JSON file (overrides MATHTUTOR_PROBLEMS env var)")
	serveCmd.Flags().String("log-mode", "", "Log mode: development or production (overrides MATHTUTOR_LOG_MODE)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := logging.New(resolveLogMode(cmd))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// The catalog load is the one fatal startup condition: the service
	// cannot run without problems.
	cat, err := catalog.Load(resolveProblemsPath(cmd))
	if err != nil {
		return fmt.Errorf("load problem catalog: %w", err)
	}
	log.Info("catalog loaded", zap.Int("problems", cat.Len()))

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The provider is optional — the server degrades to fallback
	// feedback when no API key is configured.
	provider, err := llm.NewProviderFromEnv(ctx, st.LLMLogRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutoring feedback will be unavailable.")
	}

	addr, _ := cmd.Flags().GetString("addr")
	srv := server.New(server.Options{
		Addr:     addr,
		Catalog:  cat,
		Progress: st.ProgressRepo(),
		Tutor:    tutor.NewService(provider, st.ProgressRepo(), tutor.DefaultConfig()),
		Log:      log,
	})

	return srv.Run(ctx)
}

func resolveProblemsPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("problems"); p != "" {
		return p
	}
	if p := os.Getenv("MATHTUTOR_PROBLEMS"); p != "" {
		return p
	}
	return "problems.json"
}

func resolveLogMode(cmd *cobra.Command) string {
	if m, _ := cmd.Flags().GetString("log-mode"); m != "" {
		return m
	}
	return os.Getenv("MATHTUTOR_LOG_MODE")
}
