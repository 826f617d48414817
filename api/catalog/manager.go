package catalog

import (
	"afpromotion_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CatalogRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	cacheService   *services.CacheService
}

func NewCatalogRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	cacheService *services.CacheService,
) *CatalogRoutesManager {
	return &CatalogRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		cacheService:   cacheService,
	}
}

func (crm *CatalogRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/", crm.Home)
	r.Get("/katalog", crm.ListProducts)
	r.Get("/product/{slug}", crm.GetProductBySlug)
}
