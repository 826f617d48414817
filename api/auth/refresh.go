package auth

import (
	"net/http"

	"afpromotion_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRefreshAccessToken(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		arm.logger.Warn("Refresh token not found in cookies", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Refresh token missing"), gecho.Send())
		return
	}

	authResponse, err := arm.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		arm.logger.Warn("Failed to refresh access token", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid refresh token"), gecho.Send())
		return
	}

	lib.SetCookie(lib.AccessCookieName, authResponse.AccessToken, arm.authService.GetAccessTokenExpiration(), w)
	lib.SetCookie(lib.RefreshCookieName, authResponse.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Access token refreshed successfully"),
		gecho.WithData(authResponse.User),
		gecho.Send(),
	)
}
