package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"coconala-ranking/config"
	"coconala-ranking/fetcher"
	"coconala-ranking/models"
	"coconala-ranking/scraper/coconala"
	"coconala-ranking/services"
	"coconala-ranking/sources"
	"coconala-ranking/storage"
	"coconala-ranking/utils"
)

func main() {
	app := &cli.App{
		Name:  "coconala-ranking",
		Usage: "collect the ranked TOP services of coconala categories into a CSV file",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "categories", Value: 1, Usage: "number of top-level categories to process"},
			&cli.Float64Flag{Name: "delay", Value: 2.0, Usage: "seconds to wait after each request"},
			&cli.StringFlag{Name: "output", Value: "coconala_ranking_fixed.csv", Usage: "output file name, prefixed with a timestamp"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Load()
	applyFlags(cfg, c)

	logger := utils.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if !cfg.EnvFileLoaded {
		logger.Debug("[config] No .env file found, falling back to system env vars")
	}

	logger.Info("=== coconala ranking scraper starting ===")
	logger.Info("Config: categories: %d | delay: %v | fetch mode: %s | ranking limit: %d",
		cfg.Categories, cfg.Delay, cfg.FetchMode, cfg.RankingLimit)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		logger.Warn("[config] %v, using default extraction rules", err)
		rules = config.DefaultRules()
	}

	categories, err := loadCategories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("Loaded %d categories", len(categories))

	f, err := fetcher.New(cfg, logger)
	if err != nil {
		return err
	}
	defer f.Close()

	scraper, err := coconala.New(cfg, logger, f, utils.NewThrottle(nil), coconala.NewExtractor(rules, time.Now))
	if err != nil {
		return err
	}

	records, err := scraper.ScrapeCategories(ctx, categories)
	if err != nil {
		logger.Warn("Scrape interrupted: %v, saving %d records collected so far", err, len(records))
	}

	if len(records) == 0 {
		logger.Error("No service data was collected")
		return nil
	}

	path := storage.OutputPath(cfg.OutputDir, cfg.OutputName, time.Now())
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	if err := export(w, records); err != nil {
		return err
	}
	logger.Info("Saved %d records to %s", len(records), w.Path())

	summary := services.NewSummaryService(logger)
	summary.Print(summary.Generate(records, len(categories), w.Path()))
	return nil
}

// applyFlags lets explicitly set command-line flags override the environment.
func applyFlags(cfg *config.Config, c *cli.Context) {
	if c.IsSet("categories") {
		cfg.Categories = c.Int("categories")
	}
	if c.IsSet("delay") {
		cfg.Delay = utils.Seconds(c.Float64("delay"))
	}
	if c.IsSet("output") {
		cfg.OutputName = c.String("output")
	}
}

func loadCategories(ctx context.Context, cfg *config.Config, logger *utils.Logger) ([]models.CategorySpec, error) {
	var loader sources.Loader
	if cfg.UsesSheets() {
		creds, err := sources.ServiceAccountCredentials(cfg.SheetsCredentials, cfg.SheetsCredentialsFile)
		if err != nil {
			return nil, err
		}
		sheetsLoader, err := sources.NewSheetsLoader(ctx, cfg.CategorySheetID, cfg.CategorySheetRange, creds)
		if err != nil {
			return nil, err
		}
		logger.Info("[sources] Reading categories from Google Sheets %s", cfg.CategorySheetID)
		loader = sheetsLoader
	} else {
		logger.Info("[sources] Reading categories from %s", cfg.CategoryCSVPath)
		loader = sources.NewCSVLoader(cfg.CategoryCSVPath)
	}

	categories, err := sources.LoadCategories(ctx, loader, cfg.Categories, cfg.CategoryURL)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return categories, nil
}

func export(w storage.RecordWriter, records []*models.ServiceRecord) error {
	if err := w.Write(records); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
