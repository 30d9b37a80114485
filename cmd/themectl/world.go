package main

import (
	"path/filepath"

	"github.com/Rajchodisetti/theme-engine/internal/config"
	"github.com/Rajchodisetti/theme-engine/internal/data"
	"github.com/Rajchodisetti/theme-engine/internal/pipeline"
	"github.com/Rajchodisetti/theme-engine/internal/product"
)

// world is the fully loaded configuration and data universe a command
// operates on.
type world struct {
	thresholds config.Thresholds
	registry   *product.Registry
	assets     *data.AssetTable
	macro      *data.MacroTable
	news       *data.NewsTable
	prices     *data.PriceTable
	runner     *pipeline.Runner
}

// loadWorld reads every config and table the pipeline needs. Prices are
// only loaded when the command backtests.
func loadWorld(needPrices bool) (*world, error) {
	thresholds, err := config.LoadThresholds(filepath.Join(flagConfigDir, "thresholds.yaml"))
	if err != nil {
		return nil, err
	}
	products, err := config.LoadProducts(filepath.Join(flagConfigDir, "products.yaml"))
	if err != nil {
		return nil, err
	}
	themes, err := config.LoadThemes(filepath.Join(flagConfigDir, "themes.yaml"))
	if err != nil {
		return nil, err
	}
	constraints, err := config.LoadConstraints(filepath.Join(flagConfigDir, "constraints.yaml"))
	if err != nil {
		return nil, err
	}
	assets, err := data.LoadAssets(filepath.Join(flagConfigDir, "assets.csv"))
	if err != nil {
		return nil, err
	}
	macro, err := data.LoadMacro(filepath.Join(flagDataDir, "macro.csv"))
	if err != nil {
		return nil, err
	}
	news, err := data.LoadNews(filepath.Join(flagDataDir, "news.csv"))
	if err != nil {
		return nil, err
	}

	w := &world{
		thresholds: thresholds,
		registry:   product.NewRegistry(products, themes, constraints),
		assets:     assets,
		macro:      macro,
		news:       news,
	}
	if needPrices {
		w.prices, err = data.LoadPrices(filepath.Join(flagDataDir, "prices.csv"))
		if err != nil {
			return nil, err
		}
	}
	w.runner = pipeline.NewRunner(w.thresholds, w.registry, w.macro, w.news)
	return w, nil
}
