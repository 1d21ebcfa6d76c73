// Package catalog loads the static product catalog from its YAML seed.
package catalog

import (
	"bytes"
	_ "embed"
	"log/slog"
	"os"
	"slices"

	"blinkbuy/config"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var embeddedSeed []byte

// Seed is the on-disk shape of the catalog
type Seed struct {
	Tabs       []string          `yaml:"tabs"`
	Categories []entity.Category `yaml:"categories"`
	Products   []entity.Product  `yaml:"products"`
}

type staticCatalog struct {
	tabs       []string
	categories []entity.Category
	products   []entity.Product
}

// Params holds dependencies for the catalog repository, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogRepository loads the seed named in config, or the embedded one
func NewCatalogRepository(params Params) (repository.CatalogRepository, error) {
	data := embeddedSeed
	source := "embedded"

	if cfg := params.Config.Catalog; cfg != nil && cfg.SeedPath != "" {
		raw, err := os.ReadFile(cfg.SeedPath)
		if err != nil {
			return nil, errors.Wrapf(err, "read catalog seed %s", cfg.SeedPath)
		}
		data = raw
		source = cfg.SeedPath
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Catalog loaded",
		slog.String("source", source),
		slog.Int("products", len(catalog.Products())),
		slog.Int("categories", len(catalog.Categories())),
	)

	return catalog, nil
}

// Parse decodes and validates a YAML seed
func Parse(data []byte) (repository.CatalogRepository, error) {
	var seed Seed
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return nil, errors.Wrap(err, "decode catalog seed")
	}

	if err := validate(&seed); err != nil {
		return nil, err
	}

	tabs := seed.Tabs
	if !slices.Contains(tabs, entity.AllTab) {
		tabs = append([]string{entity.AllTab}, tabs...)
	}

	return &staticCatalog{
		tabs:       tabs,
		categories: seed.Categories,
		products:   seed.Products,
	}, nil
}

func validate(seed *Seed) error {
	categoryIDs := make(map[string]struct{}, len(seed.Categories))
	for _, category := range seed.Categories {
		if category.ID == "" {
			return errors.New("category without id")
		}
		if _, dup := categoryIDs[category.ID]; dup {
			return errors.Errorf("duplicate category id %q", category.ID)
		}
		categoryIDs[category.ID] = struct{}{}
	}

	productIDs := make(map[string]struct{}, len(seed.Products))
	for _, product := range seed.Products {
		if product.ID == "" {
			return errors.Errorf("product %q without id", product.Name)
		}
		if _, dup := productIDs[product.ID]; dup {
			return errors.Errorf("duplicate product id %q", product.ID)
		}
		productIDs[product.ID] = struct{}{}

		if product.Price < 0 {
			return errors.Errorf("product %q has a negative price", product.ID)
		}
		if _, ok := categoryIDs[product.Category]; !ok {
			return errors.Errorf("product %q references unknown category %q", product.ID, product.Category)
		}
	}

	return nil
}

func (c *staticCatalog) Products() []entity.Product {
	return c.products
}

func (c *staticCatalog) Categories() []entity.Category {
	return c.categories
}

func (c *staticCatalog) Tabs() []string {
	return c.tabs
}

// Module provides the catalog FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogRepository),
)
