// Package main is the entry point for the catering-service application.
//
// @title           Catering Service API
// @version         1.0.0
// @description     Compose catering packages from dishes, price them per guest and publish them to buyers.
//
//	Caterers manage dishes, package items, packages and add-ons. Buyers compose packages from a caterer's dishes.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/catering-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token carrying the actor id and actor type (CATERER or USER).
//
// @tag.name        Packages
// @tag.description Caterer package management
//
// @tag.name        PackageItems
// @tag.description Package items and drafts
//
// @tag.name        AddOns
// @tag.description Package add-ons
//
// @tag.name        Dishes
// @tag.description Caterer dishes
//
// @tag.name        Catalog
// @tag.description Public catalog and reference data
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/catering-service/docs" // swagger docs

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/app"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	ctx := context.Background()

	application, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)
	server.OnShutdown(application.Close)

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
