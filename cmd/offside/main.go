package main

import (
	"flag"
	"log"

	"github.com/silbinarywolf/toy-offside-board/internal/app"
	"github.com/silbinarywolf/toy-offside-board/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file, falls back to $"+config.EnvConfigPath+" then the defaults")
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
	app.StartApp(cfg)
}
