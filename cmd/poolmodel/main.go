package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jnew00/pool-manager-sub000/internal/config"
	"github.com/jnew00/pool-manager-sub000/internal/database"
	"github.com/jnew00/pool-manager-sub000/internal/datasource"
	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/engine"
	"github.com/jnew00/pool-manager-sub000/internal/health"
	"github.com/jnew00/pool-manager-sub000/internal/logger"
	"github.com/jnew00/pool-manager-sub000/internal/repository"
	"github.com/jnew00/pool-manager-sub000/internal/scheduler"
	"github.com/jnew00/pool-manager-sub000/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	homeTeam   string
	awayTeam   string
	venue      string
	poolSpread float64
	playoff    bool
	traceOn    bool

	appLogger *logrus.Logger
	cfg       *config.Config
	db        *database.DB
	repos     *repository.Repositories
	slate     *service.SlateService
	ratings   *elo.Service
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	analyzeCmd.Flags().StringVar(&homeTeam, "home", "", "Home team abbreviation (required)")
	analyzeCmd.Flags().StringVar(&awayTeam, "away", "", "Away team abbreviation (required)")
	analyzeCmd.Flags().StringVar(&venue, "venue", "", "Venue name")
	analyzeCmd.Flags().Float64Var(&poolSpread, "pool-spread", 0, "Pool's posted home spread")
	analyzeCmd.Flags().BoolVar(&playoff, "playoff", false, "Playoff game")
	analyzeCmd.Flags().BoolVar(&traceOn, "trace", false, "Emit per-factor trace logging")
	_ = analyzeCmd.MarkFlagRequired("home")
	_ = analyzeCmd.MarkFlagRequired("away")

	rootCmd.AddCommand(analyzeCmd, serveCmd)
}

var rootCmd = &cobra.Command{
	Use:   "poolmodel",
	Short: "NFL pool confidence model",
	Long:  `Computes calibrated win probabilities and 0-100 confidence scores for pool pick recommendations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute confidence for one game",
	RunE: func(cmd *cobra.Command, args []string) error {
		descriptor := service.GameDescriptor{
			HomeTeamID: homeTeam,
			AwayTeamID: awayTeam,
			Kickoff:    time.Now().UTC(),
			Venue:      venue,
			IsPlayoff:  playoff,
		}
		if cmd.Flags().Changed("pool-spread") {
			descriptor.PoolSpread = &poolSpread
		}

		outputs, err := slate.AnalyzeSlate(cmd.Context(), []service.GameDescriptor{descriptor})
		if err != nil {
			return err
		}

		modelLogger := logger.NewModelLogger(appLogger)
		for _, out := range outputs {
			modelLogger.LogOutputSummary(out.GameID, out.Confidence,
				string(out.RecommendedPick), out.Factors.MarketSource)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(outputs[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the background rating maintenance service",
	RunE: func(cmd *cobra.Command, args []string) error {
		resultsSv := service.NewResultsService(repos.GameResult, ratings, cfg.ActiveWeights(), appLogger)
		sched := scheduler.NewScheduler(resultsSv, ratings, appLogger)

		if cfg.Scheduler.ResultsSync != "" {
			if err := sched.ScheduleResultsSync(cfg.Scheduler.ResultsSync); err != nil {
				return err
			}
		}
		if cfg.Scheduler.SeasonalRegression != "" {
			if err := sched.ScheduleSeasonalRegression(cfg.Scheduler.SeasonalRegression); err != nil {
				return err
			}
		}

		healthSrv := health.NewServer(health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Port:        cfg.Metrics.Port,
			MetricsPath: cfg.Metrics.Path,
			Logger:      appLogger,
			DB:          db,
		})
		healthSrv.Start()
		sched.Start()
		healthSrv.SetReady(true)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		appLogger.Info("Shutting down")
		sched.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return healthSrv.Shutdown(shutdownCtx)
	},
}

func setup(ctx context.Context) error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	appLogger = logger.NewLogger(cfg.App.LogLevel)

	if err := config.ApplySecrets(ctx, cfg); err != nil {
		return fmt.Errorf("failed to apply secrets overlay: %w", err)
	}

	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return err
	}

	ratings = elo.NewService(repos.TeamRating, appLogger)

	var opts []engine.Option
	if traceOn {
		modelLogger := logger.NewModelLogger(appLogger)
		opts = append(opts, engine.WithTrace(modelLogger.TraceHook()))
	}
	eng := engine.New(ratings, appLogger, opts...)

	slate = service.NewSlateService(eng, ratings, cfg.ActiveWeights(), appLogger)
	attachFeeds()

	return nil
}

// attachFeeds wires whichever feeds are enabled in configuration
func attachFeeds() {
	var marketSrc datasource.MarketDataSource
	var weatherSrc datasource.WeatherDataSource
	var injurySrc datasource.InjuryDataSource

	if cfg.Feeds.Odds.Enabled {
		marketSrc = datasource.NewOddsFeedClient(
			cfg.Feeds.Odds.BaseURL, cfg.Feeds.Odds.APIKey,
			datasource.NewRateLimitedHTTPClient(feedHTTPConfig(cfg.Feeds.Odds), appLogger), appLogger)
	}
	if cfg.Feeds.Weather.Enabled {
		weatherSrc = datasource.NewWeatherFeedClient(
			cfg.Feeds.Weather.BaseURL, cfg.Feeds.Weather.APIKey,
			datasource.NewRateLimitedHTTPClient(feedHTTPConfig(cfg.Feeds.Weather), appLogger), appLogger)
	}
	if cfg.Feeds.Injury.Enabled {
		injurySrc = datasource.NewInjuryFeedClient(
			cfg.Feeds.Injury.BaseURL, cfg.Feeds.Injury.APIKey,
			datasource.NewRateLimitedHTTPClient(feedHTTPConfig(cfg.Feeds.Injury), appLogger), appLogger)
	}

	slate.WithFeeds(marketSrc, weatherSrc, injurySrc)
}

func feedHTTPConfig(feed config.FeedConfig) datasource.HTTPClientConfig {
	httpCfg := datasource.DefaultHTTPClientConfig()
	if feed.TimeoutSeconds > 0 {
		httpCfg.Timeout = time.Duration(feed.TimeoutSeconds) * time.Second
	}
	if feed.MaxRetries > 0 {
		httpCfg.MaxRetries = feed.MaxRetries
	}
	if feed.RateLimit > 0 {
		httpCfg.RateLimit = feed.RateLimit
	}
	return httpCfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
