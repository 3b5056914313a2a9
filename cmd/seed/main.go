// Command seed loads catalog fixtures from a YAML file into the
// products and subscription-plans collections.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/hibiscushealth/backend/commerce"
	"github.com/hibiscushealth/backend/config"
	"github.com/hibiscushealth/backend/store"
	"github.com/hibiscushealth/backend/store/localddb"
)

type seedFile struct {
	Products []struct {
		Name          string   `yaml:"name"`
		Slug          string   `yaml:"slug"`
		Description   string   `yaml:"description"`
		Price         int64    `yaml:"price"`
		StockQuantity int64    `yaml:"stockQuantity"`
		ImageURL      string   `yaml:"imageUrl"`
		Images        []string `yaml:"images"`
		IsFeatured    bool     `yaml:"isFeatured"`
	} `yaml:"products"`
	SubscriptionPlans []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Price       int64    `yaml:"price"`
		Interval    string   `yaml:"interval"`
		Features    []string `yaml:"features"`
	} `yaml:"subscriptionPlans"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(log zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	path := "seed.yaml"
	if args := os.Args[1:]; len(args) > 0 {
		if last := args[len(args)-1]; strings.HasSuffix(last, ".yaml") || strings.HasSuffix(last, ".yml") {
			path = last
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seeds seedFile
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	ctx := context.Background()
	cols := commerce.NewCollections(cfg.Environment)

	var st store.Store
	if cfg.Local {
		local, err := localddb.New(localddb.Options{Path: cfg.LocalDataDir}, cols.All()...)
		if err != nil {
			return fmt.Errorf("open local store: %w", err)
		}
		defer local.Close()
		st = local
	} else {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("load aws config: %w", err)
		}
		st = store.NewDynamo(dynamodb.NewFromConfig(awsCfg))
	}

	svc := commerce.NewService(st, cols)

	for _, p := range seeds.Products {
		price := p.Price
		stock := p.StockQuantity
		product, err := svc.CreateProduct(ctx, commerce.ProductRequest{
			Name:          p.Name,
			Slug:          p.Slug,
			Description:   p.Description,
			Price:         &price,
			StockQuantity: &stock,
			ImageURL:      p.ImageURL,
			Images:        p.Images,
			IsFeatured:    p.IsFeatured,
		})
		if err != nil {
			if commerce.KindOf(err) == commerce.KindInvalidInput {
				log.Warn().Str("slug", p.Slug).Msg(commerce.MessageOf(err))
				continue
			}
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
		log.Info().Str("id", product.ID).Str("slug", product.Slug).Msg("seeded product")
	}

	for i, pl := range seeds.SubscriptionPlans {
		plan := commerce.SubscriptionPlan{
			ID:          commerce.NewPlanID(),
			Name:        pl.Name,
			Description: pl.Description,
			Price:       pl.Price,
			Interval:    pl.Interval,
			Features:    pl.Features,
		}
		if err := st.Put(ctx, cols.SubscriptionPlans, plan); err != nil {
			return fmt.Errorf("seed plan %d: %w", i, err)
		}
		log.Info().Str("id", plan.ID).Str("name", plan.Name).Msg("seeded plan")
	}

	return nil
}
