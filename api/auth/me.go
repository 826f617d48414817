package auth

import (
	"net/http"

	"afpromotion_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		arm.logger.Warn("Failed to parse access token", gecho.Field("error", err))
		gecho.Success(w, gecho.WithMessage("Invalid access token"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(claims.Sub)
	if err != nil || user == nil {
		arm.logger.Warn("Failed to load user for access token", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid access token"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
