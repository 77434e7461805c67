package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vr-tejas/Stockmind/internal/analysis"
	"github.com/vr-tejas/Stockmind/internal/config"
	"github.com/vr-tejas/Stockmind/internal/llm"
	"github.com/vr-tejas/Stockmind/internal/logger"
	"github.com/vr-tejas/Stockmind/internal/providers"
	"github.com/vr-tejas/Stockmind/internal/server"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "stockmind",
		Short: "Stockmind - company analysis aggregator",
		Long: `Stockmind answers "tell me about company X" by aggregating an
encyclopedia description, the company's ticker and recent price history,
an LLM-generated competitor breakdown by sector, and market-cap-ranked
peer data into a single response.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}

	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newAnalyzeCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "Listen address")

	return cmd
}

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [COMPANY]",
		Short: "Run a one-shot company analysis and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cfg, args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Stockmind v%s\n", server.Version)
		},
	}
}

func buildPipeline(ctx context.Context, cfg *config.Config, log *zap.Logger) (*analysis.Pipeline, error) {
	gen, err := llm.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build text generator: %w", err)
	}

	deps := analysis.Deps{
		Descriptions: providers.NewWikipediaClient(cfg.ProviderTimeout),
		Symbols:      providers.NewAlphaVantageClient(cfg.AlphaVantageAPIKey, cfg.TargetRegion, cfg.ProviderTimeout),
		Market:       providers.NewYahooClient(cfg.HistoryMonths, cfg.ProviderTimeout),
		Generator:    gen,
		Limit:        cfg.TopCompetitors,
	}
	return analysis.NewPipeline(deps, log), nil
}

func runServe(cfg *config.Config) error {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	pipeline, err := buildPipeline(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	handler := server.NewHandler(pipeline, log)
	app := server.New(handler, log)

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	return app.Listen(cfg.HTTPAddr)
}

func runAnalyze(cfg *config.Config, companyName string) error {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx := context.Background()
	pipeline, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	result, err := pipeline.Analyze(ctx, companyName)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
