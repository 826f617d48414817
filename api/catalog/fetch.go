package catalog

import (
	"context"
	"errors"
	"net/http"

	"afpromotion_server/handling"
	"afpromotion_server/lib"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Home is the storefront landing response: the welcome message plus the
// active catalog, newest first.
func (crm *CatalogRoutesManager) Home(w http.ResponseWriter, r *http.Request) {
	products := crm.activeProducts(r.Context())

	gecho.Success(w,
		gecho.WithMessage("Welcome to the Afpromotion API"),
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// activeProducts serves the catalog from cache when warm, falling back to
// the database and warming the cache async. Errors degrade to an empty list.
func (crm *CatalogRoutesManager) activeProducts(ctx context.Context) []tables.Product {
	if cached, err := crm.cacheService.GetCatalogFromCache(); err == nil && cached != nil {
		return cached
	}

	products, err := crm.catalogService.ListActiveProducts(ctx)
	if err != nil {
		crm.logger.Error("Failed to fetch catalog", gecho.Field("error", err))
		return nil
	}

	go func() {
		if err := crm.cacheService.SetCatalogInCache(products); err != nil {
			crm.logger.Warn("Failed to cache catalog", gecho.Field("error", err))
		}
	}()

	return products
}

// ListProducts returns the storefront catalog. The list is served from cache
// when warm; staff catalog writes invalidate it.
func (crm *CatalogRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	if cached, err := crm.cacheService.GetCatalogFromCache(); err == nil && cached != nil {
		gecho.Success(w,
			gecho.WithData(map[string]any{
				"products": cached,
				"count":    len(cached),
			}),
			gecho.Send(),
		)
		return
	}

	products, err := crm.catalogService.ListActiveProducts(r.Context())
	if err != nil {
		handling.HandleError(err, "error.catalog.fetchFailed", crm.logger, w)
		return
	}

	go func() {
		if err := crm.cacheService.SetCatalogInCache(products); err != nil {
			crm.logger.Warn("Failed to cache catalog", gecho.Field("error", err))
		}
	}()

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// GetProductBySlug returns one active product. Inactive or unknown slugs
// both come back as 404.
func (crm *CatalogRoutesManager) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if cached, err := crm.cacheService.GetProductBySlug(slug); err == nil && cached != nil {
		gecho.Success(w,
			gecho.WithData(cached),
			gecho.Send(),
		)
		return
	}

	product, err := crm.catalogService.GetActiveBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.catalog.productNotFound"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.catalog.fetchFailed", crm.logger, w)
		return
	}

	go func() {
		if err := crm.cacheService.SetProductBySlug(product); err != nil {
			crm.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("slug", slug))
		}
	}()

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
