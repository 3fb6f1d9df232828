// offside-snapshot evaluates a board without opening a window and writes
// the result out as a PNG.
//
//	go run ./cmd/offside-snapshot -move 9=300,120 -o board.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-offside-board/internal/config"
)

func main() {
	var moves moveList
	configPath := flag.String("config", "", "path to a YAML config file, falls back to $"+config.EnvConfigPath+" then the defaults")
	output := flag.String("o", "offside.png", "PNG file to write")
	flag.Var(&moves, "move", "move a player before evaluating, as identity=x,y (repeatable)")
	flag.Parse()

	if *configPath == "" {
		path, err := config.PathFromEnv(".env")
		if err != nil {
			log.Fatalf("%+v", err)
		}
		*configPath = path
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	snap, err := takeSnapshot(cfg, moves)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Println(snap.Status)

	if err := writePNG(*output, snap); err != nil {
		log.Fatalf("%+v", err)
	}
	log.Printf("wrote %s", *output)
}

func writePNG(path string, snap *snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create output file")
	}
	if err := png.Encode(f, snap.Image); err != nil {
		f.Close()
		return errors.Wrapf(err, "unable to encode %s", path)
	}
	return errors.Wrapf(f.Close(), "unable to write %s", path)
}
