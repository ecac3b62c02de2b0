package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"lunchboard-backend/lib/configutil"
	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/timezone"
	"lunchboard-backend/services/menuscraper"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var configPath *string

func init() {
	configPath = rootCmd.PersistentFlags().String(
		"config", "menu_scraper_config.json",
		"restaurant roster configuration file",
	)
}

var rootCmd = &cobra.Command{
	Use:   "menuscraper [--config <path>]",
	Short: "menuscraper extracts this week's lunch menus and ships them to the backend.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()
		batch := buildBatch(cmd.Context(), config)

		result := menuscraper.NewSubmitter(config.BackendUrl).Submit(cmd.Context(), batch)
		if result.Success {
			slog.Info("menu extraction succeeded", "restaurants", len(batch))
			return
		}

		// delivery failure is logged, not fatal: the job ran fine, the
		// scheduler decides whether to try again
		slog.Error("menu extraction failed", "cause", result.Cause)
		err := menuscraper.NewNotifier(config.Notify).SubmissionFailed(result.Cause)
		if err != nil {
			slog.Error("failed to send failure notification", "err", err)
		}
	},
}

func readConfig() menuscraper.Config {
	config, err := configutil.ReadConfig[menuscraper.Config](*configPath)
	if err != nil {
		slog.Error("failed to read config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	return config
}

func buildBatch(ctx context.Context, config menuscraper.Config) menus.MenuBatch {
	run := ulid.Make().String()
	week := menus.CurrentWeek(timezone.Now())
	slog.Info("scraping week", "run", run, "monday", week.DayISO(0), "friday", week.DayISO(4))

	service := menuscraper.NewService(config, menuscraper.DefaultRegistry())
	return service.BuildBatch(ctx, week)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
