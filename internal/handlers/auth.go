package handlers

import (
	"net/http"
	"strings"
	"time"

	"employee-admin/internal/config"
	"employee-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

// AuthHandler serves the single-admin login flow. Credentials live in
// the environment; there is no user table.
type AuthHandler struct {
	cfg  config.AppConfig
	auth *middleware.SessionAuth
}

func NewAuthHandler(cfg config.AppConfig, auth *middleware.SessionAuth) *AuthHandler {
	return &AuthHandler{cfg: cfg, auth: auth}
}

// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"Title": "Login", "Email": "", "Error": ""})
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(strings.ToLower(c.PostForm("email")))
	password := c.PostForm("password")

	if email != strings.ToLower(h.cfg.AdminEmail) ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) != nil {
		c.HTML(http.StatusUnauthorized, "login", gin.H{
			"Title": "Login",
			"Email": email,
			"Error": "invalid email or password",
		})
		return
	}

	token, err := h.auth.IssueToken(email, sessionTTL)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login", gin.H{
			"Title": "Login",
			"Email": email,
			"Error": "failed to create session",
		})
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/employees")
}

// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
