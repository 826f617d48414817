package auth

import (
	"errors"
	"net/http"

	"afpromotion_server/lib"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your registration information and try again"), gecho.Send())
		return
	}

	user, err := arm.authService.Register(body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			arm.logger.Warn("User already exists", gecho.Field("email", body.Email), gecho.Field("username", body.Username))
			gecho.Conflict(w, gecho.WithMessage("This email or username is already registered"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create user", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create account. Please try again"), gecho.Send())
		return
	}

	accessToken, err := arm.authService.GenerateAccessToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete registration. Please try again"), gecho.Send())
		return
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate refresh token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete registration. Please try again"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	// clear password from user
	user.PasswordHash = ""

	gecho.Success(w,
		gecho.WithMessage("User registered successfully"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
