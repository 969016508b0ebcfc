package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/voxelforge/terragen/internal/config"
	"github.com/voxelforge/terragen/internal/world"
	"github.com/voxelforge/terragen/pkg/world/gen"
)

func main() {
	cfg := config.DefaultConfig()

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "base terrain generator: default or flat")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "region half-width in chunks")
	flag.IntVar(&cfg.YMin, "y-min", cfg.YMin, "lowest chunk Y to generate")
	flag.IntVar(&cfg.YMax, "y-max", cfg.YMax, "highest chunk Y to generate")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "generation workers (0 = one per CPU)")
	flag.StringVar(&cfg.MapOut, "map", cfg.MapOut, "write a biome map PNG to this path")
	cfgPath := flag.String("config", "", "JSON config file (flags take precedence)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *cfgPath != "" {
		fromFile, err := config.Load(*cfgPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	var generator gen.Generator
	switch cfg.Generator {
	case "default":
		generator = gen.NewTerrainGenerator(cfg.Seed)
	case "flat":
		generator = gen.NewFlatGenerator(gen.SeaLevel)
	default:
		log.Error("unknown generator", "generator", cfg.Generator)
		os.Exit(1)
	}

	w := world.New(cfg.Seed, generator)

	log.Info("generating region",
		"seed", cfg.Seed,
		"generator", cfg.Generator,
		"radius", cfg.Radius,
		"y_min", cfg.YMin,
		"y_max", cfg.YMax,
	)
	start := time.Now()
	n := w.GenerateRegion(cfg.Radius, cfg.YMin, cfg.YMax, cfg.Workers)
	log.Info("region generated", "chunks", n, "elapsed", time.Since(start))

	counts := map[gen.Biome]int{}
	for cx := -cfg.Radius; cx <= cfg.Radius; cx++ {
		for cz := -cfg.Radius; cz <= cfg.Radius; cz++ {
			for _, b := range w.ColumnBiomes(gen.ChunkKey{X: cx, Z: cz}) {
				counts[b]++
			}
		}
	}
	for b := gen.BasicLand; b <= gen.BlueLand; b++ {
		log.Info("biome columns", "biome", b.String(), "count", counts[b])
	}

	if cfg.MapOut != "" {
		if err := renderBiomeMap(w, cfg.Radius, cfg.MapOut); err != nil {
			log.Error("render biome map", "error", err)
			os.Exit(1)
		}
		log.Info("biome map written", "path", cfg.MapOut)
	}
}

// biomeColors is the map legend, one color per land variant.
var biomeColors = map[gen.Biome]color.RGBA{
	gen.BasicLand: {34, 139, 34, 255},   // grass green
	gen.DryLand:   {150, 110, 70, 255},  // parched brown
	gen.SnowLand:  {240, 245, 250, 255}, // snow white
	gen.SandLand:  {220, 200, 120, 255}, // sand yellow
	gen.BlueLand:  {60, 110, 200, 255},  // water blue
}

// renderBiomeMap writes a top-down PNG of the region's biome footprint,
// one pixel per column.
func renderBiomeMap(w *world.World, radius int, path string) error {
	side := (2*radius + 1) * gen.ChunkSize
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			biomes := w.ColumnBiomes(gen.ChunkKey{X: cx, Z: cz})
			px := (cx + radius) * gen.ChunkSize
			pz := (cz + radius) * gen.ChunkSize
			for i, b := range biomes {
				x, z := gen.PlaneShape.Delinearize2(i)
				img.SetRGBA(px+x, pz+z, biomeColors[b])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
