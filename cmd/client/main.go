package main

import (
	"log"

	"github.com/svortega/authms/internal/client/cli"
	"github.com/svortega/authms/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run()
}
