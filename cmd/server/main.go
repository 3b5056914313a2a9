package main

import (
	"context"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"

	"github.com/hibiscushealth/backend/commerce"
	"github.com/hibiscushealth/backend/config"
	"github.com/hibiscushealth/backend/httpapi"
	"github.com/hibiscushealth/backend/store"
	"github.com/hibiscushealth/backend/store/localddb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	ctx := context.Background()
	cols := commerce.NewCollections(cfg.Environment)

	var st store.Store
	if cfg.Local {
		local, err := localddb.New(localddb.Options{Path: cfg.LocalDataDir}, cols.All()...)
		if err != nil {
			log.Fatal().Err(err).Msg("open local store")
		}
		defer local.Close()
		st = local
		log.Info().Str("dataDir", cfg.LocalDataDir).Msg("using embedded local store")
	} else {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("load aws config")
		}
		st = store.NewDynamo(dynamodb.NewFromConfig(awsCfg))
	}

	svc := commerce.NewService(st, cols)
	server := httpapi.NewServer(httpapi.ServerConfig{Addr: cfg.HTTPAddr}, svc, log)

	log.Info().Str("environment", cfg.Environment).Msg("starting")
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
