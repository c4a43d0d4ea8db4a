package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "github.com/Flarenzy/inetstore/docs"
	"github.com/Flarenzy/inetstore/internal/app"
)

//	@title			inetstore API
//	@version		1.0
//	@description	Stores IPv4 and IPv6 addresses with their prefix length.

//	@host		localhost:4040
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
