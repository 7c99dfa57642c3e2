//go:build ignore

// This script mints a bearer token for local testing.
// Run with: go run scripts/mint_token.go -type CATERER [-id <hex>]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
)

func main() {
	actorType := flag.String("type", "CATERER", "actor type: CATERER or USER")
	actorID := flag.String("id", "", "actor id (hex ObjectID); a new id is generated when empty")
	flag.Parse()

	config.LoadDotEnv()
	cfg := config.Load()

	id := primitive.NewObjectID()
	if *actorID != "" {
		parsed, err := primitive.ObjectIDFromHex(*actorID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid actor id: %v\n", err)
			os.Exit(1)
		}
		id = parsed
	}

	tokens := service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg.Auth))
	token, err := tokens.Mint(model.Actor{ID: id, Type: model.ActorType(strings.ToUpper(*actorType))})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error minting token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# %s %s, valid for %s\n", strings.ToUpper(*actorType), id.Hex(), cfg.Auth.TokenTTL)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
