package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/talhanuhuymaz/Renart-Case/internal/domain/model"
	"github.com/talhanuhuymaz/Renart-Case/internal/logger"
	"github.com/talhanuhuymaz/Renart-Case/internal/metrics"
)

// GoldPriceResolver resolves the current gold price per gram.
// Implementations never fail; they fall back to a constant.
type GoldPriceResolver interface {
	Resolve(ctx context.Context) float64
}

// Catalog serves the priced product list.
type Catalog interface {
	// Products returns every product with derived fields populated from a
	// freshly resolved gold price.
	Products(ctx context.Context) []model.PricedProduct
	// Len returns the number of products in the catalog.
	Len() int
}

// CatalogService implements Catalog over an immutable product slice
// loaded once at construction. The slice is shared by reference and never
// mutated, so no synchronization is needed.
type CatalogService struct {
	products []model.Product
	resolver GoldPriceResolver
}

// NewCatalogService creates a CatalogService over an in-memory product list.
// Products violating the catalog invariants are logged and skipped so the
// service always has something to serve.
func NewCatalogService(products []model.Product, resolver GoldPriceResolver) *CatalogService {
	log := logger.Logger()

	valid := make([]model.Product, 0, len(products))
	for i, p := range products {
		if !p.Valid() {
			log.Warn().
				Int("index", i).
				Str("name", p.Name).
				Msg("Skipping invalid catalog entry")
			continue
		}
		if p.ID == "" {
			p.ID = fmt.Sprintf("p-%d", i)
		}
		valid = append(valid, p)
	}

	return &CatalogService{
		products: valid,
		resolver: resolver,
	}
}

// LoadCatalogService reads the product file and builds a CatalogService.
func LoadCatalogService(path string, resolver GoldPriceResolver) (*CatalogService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	svc := NewCatalogService(products, resolver)
	log := logger.Logger()
	log.Info().
		Str("file", path).
		Int("products", svc.Len()).
		Msg("Catalog loaded")
	return svc, nil
}

// Products resolves a fresh gold price and maps every product through the
// pricing engine. The underlying product list is never modified.
func (s *CatalogService) Products(ctx context.Context) []model.PricedProduct {
	goldPrice := s.resolver.Resolve(ctx)

	result := make([]model.PricedProduct, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, model.PricedProduct{
			Product:          p,
			Price:            Price(p.PopularityScore, p.Weight, goldPrice),
			PopularityOutOf5: RatingOutOf5(p.PopularityScore),
		})
	}

	metrics.RecordCatalogRequest()
	return result
}

// Len returns the number of valid products in the catalog.
func (s *CatalogService) Len() int {
	return len(s.products)
}
