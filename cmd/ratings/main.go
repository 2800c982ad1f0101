package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jnew00/pool-manager-sub000/internal/config"
	"github.com/jnew00/pool-manager-sub000/internal/database"
	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/logger"
	"github.com/jnew00/pool-manager-sub000/internal/repository"
	"github.com/jnew00/pool-manager-sub000/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	season     int
	batchLimit int

	appLogger *logrus.Logger
	cfg       *config.Config
	db        *database.DB
	repos     *repository.Repositories
	ratings   *elo.Service
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	seedCmd.Flags().IntVar(&season, "season", 0, "Season to seed ratings for (required)")
	_ = seedCmd.MarkFlagRequired("season")
	regressCmd.Flags().IntVar(&season, "season", 0, "Season the regression applies to (required)")
	_ = regressCmd.MarkFlagRequired("season")
	syncCmd.Flags().IntVar(&batchLimit, "limit", 0, "Maximum number of results to process (0 = default batch)")

	rootCmd.AddCommand(seedCmd, regressCmd, syncCmd, showCmd)
}

var rootCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Manage the team rating store",
	Long:  `Seeds, regresses, inspects, and syncs the Elo-style team ratings behind the pool confidence model.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed initial ratings from prior seasons' win rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ratings.SeedHistoricalRatings(cmd.Context(), season, repos.GameResult); err != nil {
			return err
		}
		fmt.Printf("Seeded ratings for season %d\n", season)
		return nil
	},
}

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Apply offseason regression toward the mean",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ratings.ApplySeasonalRegression(cmd.Context(), season); err != nil {
			return err
		}
		fmt.Printf("Applied seasonal regression for season %d\n", season)
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Apply pending game results to ratings",
	RunE: func(cmd *cobra.Command, args []string) error {
		resultsSv := service.NewResultsService(repos.GameResult, ratings, cfg.ActiveWeights(), appLogger)
		processed, err := resultsSv.ProcessUnprocessed(cmd.Context(), batchLimit)
		if err != nil {
			return err
		}
		fmt.Printf("Processed %d game results\n", processed)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List stored ratings, strongest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := ratings.ListRatings(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TEAM\tRATING\tGAMES\tUPDATED")
		for _, r := range all {
			fmt.Fprintf(w, "%s\t%.1f\t%d\t%s\n", r.TeamID, r.Rating, r.GamesPlayed, r.LastUpdated.Format("2006-01-02"))
		}
		return w.Flush()
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
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
