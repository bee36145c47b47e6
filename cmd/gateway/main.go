package main

import (
	"context"
	"log"

	"github.com/freshdeal/account-service/internal/gateway"
	"github.com/freshdeal/account-service/internal/gateway/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := gateway.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
