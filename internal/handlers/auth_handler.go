package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appsalute/clinic-booking/internal/httperr"
	ucAuth "github.com/appsalute/clinic-booking/internal/usecase/auth"
)

type AuthHandler struct {
	login  *ucAuth.Login
	logout *ucAuth.Logout

	cookieName   string
	cookieSecure bool
}

func NewAuthHandler(
	login *ucAuth.Login,
	logout *ucAuth.Logout,
	cookieName string,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		login:        login,
		logout:       logout,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, AuthResponse{
				Success: false,
				Message: "Credenziali errate.",
			})
			return
		}
		writeError(c, err)
		return
	}

	h.setSessionCookie(c, out.Token, int(time.Until(out.ExpiresAt).Seconds()))

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login effettuato con successo!",
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookieName)

	if err := h.logout.Execute(c.Request.Context(), token); err != nil {
		writeError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Logout effettuato con successo!",
	})
}

// --------- Cookie ---------

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
