// Command life-run drives a session headlessly with synthetic frame times and
// prints the population after every frame that produced a generation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lifepaint/internal/config"
	"lifepaint/internal/core"
	"lifepaint/internal/render"
	"lifepaint/internal/session"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cols := flag.Int("cols", 40, "board width in cells")
	rows := flag.Int("rows", 20, "board height in cells")
	frames := flag.Int("frames", 120, "number of frames to simulate")
	frameMS := flag.Int("frame-ms", 16, "synthetic milliseconds per frame")
	blank := flag.Bool("blank", false, "start from an empty board")
	dump := flag.Bool("dump", true, "print the final board")
	var overrides, cells kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Var(&cells, "cell", "cell to paint alive before playing, as col,row (repeatable)")
	flag.Parse()

	cfg := config.NewConfig()
	cfg.Erase = false
	m := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("[life-run] ignoring malformed override %q", kv)
			continue
		}
		m[parts[0]] = parts[1]
	}
	cfg.ApplyMap(m)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	geom := core.Geometry{CellPx: cfg.CellPx, Cols: *cols, Rows: *rows}
	out := render.NewText(os.Stdout)
	sess := session.New(session.Options{
		Geometry: geom,
		Rate:     cfg.Rate,
		Brush:    cfg.Brush(),
		RNG:      core.NewRNG(cfg.Seed),
	}, out)

	if *blank {
		sess.OnKey(session.KeyEvent{Rune: session.KeyClear})
	}
	for _, c := range cells {
		p, err := parseCell(c)
		if err != nil {
			log.Fatal(err)
		}
		px := geom.CellPx
		sess.OnPointerDown(p.Col*px, p.Row*px)
		sess.OnPointerUp()
	}

	sess.OnKey(session.KeyEvent{Rune: session.KeyToggle, Up: true})
	delta := time.Duration(*frameMS) * time.Millisecond
	for i := 0; i < *frames; i++ {
		before := sess.Generation()
		sess.OnFrame(delta)
		if sess.Generation() != before {
			fmt.Printf("frame %d generation %d population %d\n", i, sess.Generation(), sess.Board().Population())
		}
	}
	fmt.Println(sess.Status())

	if *dump {
		if err := out.Dump(sess.Board()); err != nil {
			log.Fatal(err)
		}
	}
}

func parseCell(s string) (core.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return core.Point{}, fmt.Errorf("cell %q: want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Point{}, fmt.Errorf("cell %q: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Point{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return core.Point{Col: col, Row: row}, nil
}
