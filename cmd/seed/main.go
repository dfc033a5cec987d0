package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/config"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main runs the catalog maintenance commands.
// Usage: go run ./cmd/seed migrate | go run ./cmd/seed seed --store tech-boutique
func main() {
	cmd := &cli.Command{
		Name:  "seed",
		Usage: "Catalog database maintenance",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create or update the catalog tables",
				Action: func(ctx context.Context, c *cli.Command) error {
					config.InitDB()
					defer config.CloseDB()

					if err := models.AutoMigrate(config.CatalogGorm.WithContext(ctx)); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Insert a demo store with categories, brands, options and products",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "store",
						Value: "tech-boutique",
						Usage: "slug of the demo store",
					},
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "delete the store's catalog before seeding",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					config.InitDB()
					defer config.CloseDB()

					db := config.CatalogGorm.WithContext(ctx)
					if err := models.AutoMigrate(db); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}

					slug := c.String("store")
					if c.Bool("reset") {
						if err := resetStore(db, slug); err != nil {
							return err
						}
						log.Printf("✅ Store %q reset", slug)
					}

					summary, err := seedStore(db, slug)
					if err != nil {
						return err
					}
					log.Printf("✅ Seeded store %q: %d products, %d variants", slug, summary.products, summary.variants)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
