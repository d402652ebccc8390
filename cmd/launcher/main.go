package main

import (
	"context"
	"log"

	"github.com/permadeath/launcher/internal/launcher"
	"github.com/permadeath/launcher/internal/launcher/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := launcher.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
