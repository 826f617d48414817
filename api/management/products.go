package management

import (
	"errors"
	"net/http"

	"afpromotion_server/lib"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListProducts returns every product, active or not.
func (mrm *ManagementRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := mrm.catalogService.ListAllProducts(r.Context())
	if err != nil {
		mrm.logger.Error("Failed to list products", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.product.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// CreateProduct adds a product to the catalog and drops the cached
// storefront listing.
func (mrm *ManagementRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		mrm.logger.Warn("Invalid product body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.product.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := mrm.catalogService.CreateProduct(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("error.product.categoryNotFound"), gecho.Send())
		case errors.Is(err, lib.ErrConflict):
			gecho.Conflict(w, gecho.WithMessage("error.product.slugTaken"), gecho.Send())
		default:
			mrm.logger.Error("Failed to create product", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("error.product.createFailed"), gecho.Send())
		}
		return
	}

	mrm.invalidateCatalogCache()

	gecho.Success(w,
		gecho.WithMessage("success.product.created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

// UpdateProduct overwrites a product's editable fields.
func (mrm *ManagementRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productIdStr := chi.URLParam(r, "id")
	productId, err := uuid.Parse(productIdStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.product.invalidProductId"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		mrm.logger.Warn("Invalid product body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.product.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := mrm.catalogService.UpdateProduct(r.Context(), productId, body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("error.product.notFound"), gecho.Send())
		case errors.Is(err, lib.ErrConflict):
			gecho.Conflict(w, gecho.WithMessage("error.product.slugTaken"), gecho.Send())
		default:
			mrm.logger.Error("Failed to update product", gecho.Field("error", err), gecho.Field("product_id", productId))
			gecho.InternalServerError(w, gecho.WithMessage("error.product.updateFailed"), gecho.Send())
		}
		return
	}

	mrm.invalidateCatalogCache()

	gecho.Success(w,
		gecho.WithMessage("success.product.updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (mrm *ManagementRoutesManager) invalidateCatalogCache() {
	go func() {
		if err := mrm.cacheService.InvalidateCatalogCache(); err != nil {
			mrm.logger.Warn("Failed to invalidate catalog cache", gecho.Field("error", err))
		}
	}()
}
