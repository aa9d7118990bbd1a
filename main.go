package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"chress/pkg/game/assets"
	"chress/pkg/game/config"
	"chress/pkg/game/gameplay"
	"chress/pkg/game/generator"
	"chress/pkg/game/renderer"
	"chress/pkg/game/renderer/ebiten"
	"chress/pkg/game/renderer/tui"
	"chress/pkg/game/zone"
)

func initGettext(prefs *config.Preferences) {
	gotext.Configure(prefs.LocaleDir, prefs.Language, "default")
}

// loadAssets starts decoding every texture. With wait set it blocks until
// the loader is done; otherwise textures appear as they finish.
func loadAssets(ctx context.Context, dir string, wait bool) *assets.Cache {
	cache := assets.NewCache()
	done := assets.NewLoader(dir, cache).LoadAsync(ctx)

	report := func(err error) {
		if err != nil {
			log.Printf("Warning: loading assets from %s: %v", dir, err)
			return
		}
		log.Printf("Loaded %d textures from %s", cache.Len(), dir)
	}
	if wait {
		report(<-done)
	} else {
		go func() { report(<-done) }()
	}
	return cache
}

func run() error {
	prefs := config.Current()

	backend := flag.String("backend", prefs.Backend, "renderer to use: ebiten or tui")
	assetDir := flag.String("assets", prefs.AssetDir, "directory holding the PNG textures")
	seed := flag.Uint64("seed", prefs.Seed, "world seed")
	startZone := flag.String("zone", zone.CreateKey(0, 0, zone.Surface, 0), "key of the starting zone, like 0,0:0 or 1,2:2:z-1")
	dump := flag.Bool("dump", false, "print one frame to the terminal and exit")
	flag.Parse()

	start, err := zone.ParseKey(*startZone)
	if err != nil {
		return fmt.Errorf("-zone: %w", err)
	}

	initGettext(prefs)
	generator.Configure(generator.Options{Seed: *seed, Size: prefs.GridSize})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tex := loadAssets(ctx, *assetDir, *dump)
	g := gameplay.BuildGame(start)

	if *dump {
		return tui.New(tex, os.Stdout).Dump(g)
	}

	var b renderer.Backend
	switch *backend {
	case "tui":
		b = tui.New(tex, os.Stdout)
	case "ebiten":
		e, err := ebiten.New(tex, prefs)
		if err != nil {
			return fmt.Errorf("creating window: %w", err)
		}
		b = e
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}
	return b.Run(g)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chress: %v\n", err)
		os.Exit(1)
	}
}
