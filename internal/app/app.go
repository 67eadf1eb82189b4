// Package app provides application initialization and dependency injection.
package app

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/talhanuhuymaz/Renart-Case/config"
	"github.com/talhanuhuymaz/Renart-Case/internal/goldprice"
	"github.com/talhanuhuymaz/Renart-Case/internal/http"
	"github.com/talhanuhuymaz/Renart-Case/internal/service"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	InitializeLogger()

	resolver := goldprice.NewResolverFromConfig(cfg.GoldPrice)

	catalog, err := service.LoadCatalogService(cfg.Catalog.File, resolver)
	if err != nil {
		return nil, err
	}

	handler := http.NewHandler(catalog)
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", catalogChecker{catalog})

	return http.NewRouter(handler, healthHandler), nil
}

var errEmptyCatalog = errors.New("catalog is empty")

// catalogChecker reports readiness based on the catalog holding products.
type catalogChecker struct {
	catalog service.Catalog
}

func (c catalogChecker) Check() error {
	if c.catalog.Len() == 0 {
		return errEmptyCatalog
	}
	return nil
}
