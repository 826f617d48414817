package management

import (
	"errors"
	"net/http"

	"afpromotion_server/lib"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
)

func (mrm *ManagementRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := mrm.catalogService.ListCategories(r.Context())
	if err != nil {
		mrm.logger.Error("Failed to list categories", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.category.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
			"count":      len(categories),
		}),
		gecho.Send(),
	)
}

func (mrm *ManagementRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		mrm.logger.Warn("Invalid category body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.category.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	category, err := mrm.catalogService.CreateCategory(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w, gecho.WithMessage("error.category.nameOrSlugTaken"), gecho.Send())
			return
		}
		mrm.logger.Error("Failed to create category", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.category.createFailed"), gecho.Send())
		return
	}

	mrm.invalidateCatalogCache()

	gecho.Success(w,
		gecho.WithMessage("success.category.created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}
