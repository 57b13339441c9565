// Command shapes runs a registered generator headlessly and prints its
// frames as text.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"mad-shapes/internal/app"
	"mad-shapes/internal/core"
	_ "mad-shapes/internal/sims/caves"
	_ "mad-shapes/internal/sims/dungeon"
	_ "mad-shapes/internal/sims/life"
	_ "mad-shapes/internal/sims/regions"
	"mad-shapes/pkg/shape"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 0
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("list", false, "list available simulations and exit")
	flag.Parse()

	if *list {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}
	if cfg.Verbose {
		shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}
	if err := app.RunText(os.Stdout, factory(cfg.Set), cfg); err != nil {
		log.Fatal(err)
	}
}
