package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/mentorhub/internal/buildinfo"
	"github.com/dmitrijs2005/mentorhub/internal/cli"
	"github.com/dmitrijs2005/mentorhub/internal/config"
	"github.com/dmitrijs2005/mentorhub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
