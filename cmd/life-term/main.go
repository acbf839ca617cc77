package main

import (
	"flag"
	"log"

	"lifepaint/internal/config"
	"lifepaint/internal/core"
	"lifepaint/internal/session"
	"lifepaint/internal/term"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	opts := session.Options{
		Rate:  cfg.Rate,
		Brush: cfg.Brush(),
		RNG:   core.NewRNG(cfg.Seed),
	}
	if err := term.Run(screen, opts); err != nil {
		log.Fatal(err)
	}
}
