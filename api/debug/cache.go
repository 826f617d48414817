package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ClearCache flushes the whole cache. Registered outside production only;
// handy after touching products directly in the database.
func (drm *DebugRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	err := drm.cacheService.ClearAll()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cache.clearFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cache.cleared"),
		gecho.WithData(drm.cacheService.GetConnectionStats()),
		gecho.Send(),
	)
}
