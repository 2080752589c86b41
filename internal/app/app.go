package app

import (
	"context"
	"fmt"
	"log"

	"github.com/hushboard/backend/config"
	v1 "github.com/hushboard/backend/internal/handlers/http/v1"
	"github.com/hushboard/backend/internal/httpserver"
	"github.com/hushboard/backend/internal/kindness"
	"github.com/hushboard/backend/internal/repository"
	"github.com/hushboard/backend/internal/repository/inmemory"
	"github.com/hushboard/backend/internal/repository/postgres"
	"github.com/hushboard/backend/internal/repository/sqlite"
	"github.com/hushboard/backend/internal/service"
)

func Run(conf *config.Config) error {
	ctx := context.Background()

	repo, err := newRepository(conf.Storage)
	if err != nil {
		return fmt.Errorf("error when setting up repository: %v", err)
	}

	tokens := kindness.New(conf.Kindness.SecretKey, conf.Kindness.TokenTTL)
	svc := service.New(repo, tokens, conf.Kindness.Enabled)

	handler, err := v1.New(svc, conf)
	if err != nil {
		return fmt.Errorf("error when setting up handler: %v", err)
	}

	server := httpserver.New(conf.HTTPServer, handler)

	return server.Run(ctx)
}

func newRepository(conf config.Storage) (repository.Repository, error) {
	switch conf.Driver {
	case "postgres":
		return postgres.New(conf)
	case "sqlite":
		return sqlite.New(conf)
	case "memory":
		log.Println("[SETUP] using in-memory storage, data will not survive restarts")
		return inmemory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Driver)
	}
}
