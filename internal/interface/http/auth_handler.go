package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskhub/internal/application"
	"taskhub/pkg/helpers"
	"taskhub/pkg/response"
	"taskhub/pkg/validation"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type loginResponse struct {
	User   application.UserProjection `json:"user"`
	Tokens tokenResponse              `json:"tokens"`
}

// AuthHandler owns the unauthenticated surface: register, login, refresh,
// logout. Tokens travel both in response bodies and as httpOnly cookies.
type AuthHandler struct {
	Register *application.RegisterUseCase
	Login    *application.LoginUseCase
	Refresh  *application.RefreshTokenUseCase
	Cookies  *helpers.CookieManager
	Logger   *logrus.Logger
}

func NewAuthHandler(reg *application.RegisterUseCase, login *application.LoginUseCase, refresh *application.RefreshTokenUseCase, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Register: reg, Login: login, Refresh: refresh, Cookies: cookies, Logger: logger}
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid request", validation.ToDetails(err))
		return
	}

	user, err := h.Register.Execute(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user, "registered")
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid request", validation.ToDetails(err))
		return
	}

	res, err := h.Login.Execute(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.Cookies.SetPair(c, res.Tokens.AccessToken, res.Tokens.AccessTokenExpiry, res.Tokens.RefreshToken, res.Tokens.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, loginResponse{
		User: res.User,
		Tokens: tokenResponse{
			AccessToken:  res.Tokens.AccessToken,
			RefreshToken: res.Tokens.RefreshToken,
		},
	}, "logged in")
}

// RefreshToken accepts the refresh token from the JSON body, falling back to
// the refresh_token cookie for browser clients.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)
	token := req.RefreshToken
	if token == "" {
		if cookie, err := c.Cookie("refresh_token"); err == nil {
			token = cookie
		}
	}
	if token == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	pair, err := h.Refresh.Execute(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		return
	}

	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "token refreshed")
}

// LogoutUser clears the cookie pair. There is no server-side session to end;
// tokens held elsewhere remain valid until expiry.
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logged out")
}
