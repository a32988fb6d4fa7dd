package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/model"
	"in.co.kisanmitra/internal/service/token"
)

type AuthService interface {
	VerifyMobile(mobile string) (string, error)
	Signup(params *model.SignupParams) (*model.Account, *token.Pair, error)
	Login(params *model.LoginParams) (*model.Account, *token.Pair, error)
	Refresh(refreshToken string) (*token.Pair, error)
	Authenticate(accessToken string) (*model.Account, error)
	Profile(id model.AccountID) (*model.Account, error)
	UpdateProfile(id model.AccountID, params *model.ProfileUpdateParams) (*model.Account, error)
}

type authPayload struct {
	Account *model.Account `json:"account"`
	Tokens  *token.Pair    `json:"tokens"`
}

func setTokenCookies(c echo.Context, pair *token.Pair, config *boot.Config) {
	c.SetCookie(&http.Cookie{
		Name:     AccessCookieName,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   int(config.AccessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     RefreshCookieName,
		Value:    pair.RefreshToken,
		Path:     "/api/auth/refresh",
		MaxAge:   int(config.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookies(c echo.Context, config *boot.Config) {
	c.SetCookie(&http.Cookie{
		Name:     AccessCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/api/auth/refresh",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// VerifyMobile issues the pre-signup OTP. The code is echoed in the response
// outside production only; the real delivery channel is SMS.
func VerifyMobile(authService AuthService, config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := struct {
			Mobile string `json:"mobile"`
		}{}
		if err := c.Bind(&params); err != nil {
			return badRequest(c, "invalid request body")
		}
		code, err := authService.VerifyMobile(params.Mobile)
		if err != nil {
			return fail(c, err)
		}
		var data interface{}
		if !config.IsProduction() {
			data = map[string]string{"otp": code}
		}
		return okMessage(c, http.StatusOK, "OTP sent", data)
	}
}

func Signup(authService AuthService, config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.SignupParams{}
		if err := c.Bind(params); err != nil {
			return badRequest(c, "invalid request body")
		}
		account, pair, err := authService.Signup(params)
		if err != nil {
			return fail(c, err)
		}
		setTokenCookies(c, pair, config)
		return ok(c, http.StatusCreated, authPayload{Account: account, Tokens: pair})
	}
}

func Login(authService AuthService, config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.LoginParams{}
		if err := c.Bind(params); err != nil {
			return badRequest(c, "invalid request body")
		}
		account, pair, err := authService.Login(params)
		if err != nil {
			return fail(c, err)
		}
		setTokenCookies(c, pair, config)
		return ok(c, http.StatusOK, authPayload{Account: account, Tokens: pair})
	}
}

// Refresh mints a new pair from the refresh cookie and rewrites both
// cookies. The access token plays no part here.
func Refresh(authService AuthService, config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(RefreshCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, response{Message: "Refresh token required"})
		}
		pair, err := authService.Refresh(cookie.Value)
		if err != nil {
			return fail(c, err)
		}
		setTokenCookies(c, pair, config)
		return ok(c, http.StatusOK, map[string]*token.Pair{"tokens": pair})
	}
}

// Logout clears the cookies. Succeeds whether or not a session exists.
func Logout(config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		clearTokenCookies(c, config)
		return okMessage(c, http.StatusOK, "logged out", nil)
	}
}

func GetProfile() echo.HandlerFunc {
	return func(c echo.Context) error {
		return ok(c, http.StatusOK, AccountFrom(c))
	}
}

func UpdateProfile(authService AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.ProfileUpdateParams{}
		if err := c.Bind(params); err != nil {
			return badRequest(c, "invalid request body")
		}
		account, err := authService.UpdateProfile(AccountFrom(c).ID, params)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, account)
	}
}
