package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/drujensen/agenthub/internal/domain/services"
	"github.com/drujensen/agenthub/internal/impl/config"
	"github.com/drujensen/agenthub/internal/impl/fixtures"
	repositories_memory "github.com/drujensen/agenthub/internal/impl/repositories/memory"
	"github.com/drujensen/agenthub/internal/impl/responders"
	"github.com/drujensen/agenthub/internal/tui"
	"github.com/drujensen/agenthub/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	version = "unknown" // This should be set during build with -ldflags="-X main.version=1.0.0"

	verbose      bool
	fixturesPath string
)

const tuiLogFile = "agenthub.log"

var rootCmd = &cobra.Command{
	Use:   "agenthub",
	Short: "AgentHub - chat with AI agents and manage the agent catalog",
	Long: `AgentHub serves a web dashboard where users chat with AI agents and
developers manage the agent catalog. Replies are simulated.

Run without arguments to start the web dashboard.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard and REST API",
	RunE:  runServe,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Chat with an agent from the terminal",
	RunE:  runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&fixturesPath, "fixtures", "", "YAML fixtures file (default: embedded demo data)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg              *config.Config
	logger           *zap.Logger
	agentService     services.AgentService
	analyticsService services.AnalyticsService
	chatService      services.ChatService
}

func newApp(logger *zap.Logger, cfg *config.Config) (*app, error) {
	var catalog *fixtures.Catalog
	var err error
	if cfg.FixturesPath != "" {
		catalog, err = fixtures.Load(cfg.FixturesPath)
	} else {
		catalog, err = fixtures.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	agentRepo := repositories_memory.NewMemoryAgentRepository(catalog.AgentSeed())
	responder := responders.NewMock(catalog.Welcome, catalog.Info)

	agentService := services.NewAgentService(agentRepo, cfg.UploadDelay, logger)
	analyticsService := services.NewAnalyticsService(agentRepo, catalog, logger)
	chatService := services.NewChatService(agentService, responder, catalog.QuickPrompts, cfg.ResponseDelay, logger)

	return &app{
		cfg:              cfg,
		logger:           logger,
		agentService:     agentService,
		analyticsService: analyticsService,
		chatService:      chatService,
	}, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if fixturesPath != "" {
		cfg.FixturesPath = fixturesPath
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	a, err := newApp(logger, cfg)
	if err != nil {
		return err
	}
	defer a.chatService.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := ui.NewUI(a.chatService, a.agentService, a.analyticsService, cfg.Addr, logger)
	defer server.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Closing chat sessions", zap.Int("sessions", len(a.chatService.ListSessions(context.Background()))))
		return nil
	})

	return g.Wait()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stderr belongs to the terminal UI
	logger := zap.NewNop()
	if verbose {
		logger, err = cfg.NewLogger(true, tuiLogFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()
	}

	a, err := newApp(logger, cfg)
	if err != nil {
		return err
	}
	defer a.chatService.Close()

	model, err := tui.NewTUI(a.chatService, a.agentService)
	if err != nil {
		return fmt.Errorf("failed to start chat session: %w", err)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
