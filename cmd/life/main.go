//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifepaint/internal/app"
	"lifepaint/internal/config"
	"lifepaint/internal/core"
	"lifepaint/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.ApplyQuery(cfg.Query); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	geom := cfg.Geometry(ebiten.ScreenSizeInFullscreen())
	if geom.Cols == 0 || geom.Rows == 0 {
		log.Printf("[life] viewport too small for %dpx cells; the board is empty", cfg.CellPx)
	}
	log.Printf("[life] grid %dx%d cell=%dpx rate=%d", geom.Cols, geom.Rows, geom.CellPx, cfg.Rate)

	game := app.New(session.Options{
		Geometry: geom,
		Rate:     cfg.Rate,
		Brush:    cfg.Brush(),
		RNG:      core.NewRNG(cfg.Seed),
		OnStatus: func(st session.Status) {
			ebiten.SetWindowTitle("life — " + st.String())
		},
	})

	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
