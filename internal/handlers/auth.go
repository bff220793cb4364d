package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertkaya/platformhub/internal/middleware"
	"github.com/mertkaya/platformhub/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage displays the login form
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if middleware.GetSession(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	data := gin.H{
		"Title": "Sign In",
		"Error": c.Query("error"),
	}

	c.HTML(http.StatusOK, "login", data)
}

// Login handles email+password sign-in
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.SignIn(email, password)
	if err != nil {
		data := gin.H{
			"Title": "Sign In",
			"Email": email,
			"Error": err.Error(),
		}
		c.HTML(http.StatusUnauthorized, "login", data)
		return
	}

	if err := middleware.SetSession(c, user.ID.String(), user.Email, user.Name); err != nil {
		c.Redirect(http.StatusFound, "/login?error=session_creation_failed")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// SignupPage displays the signup form
func (h *AuthHandler) SignupPage(c *gin.Context) {
	if middleware.GetSession(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	data := gin.H{
		"Title": "Create Account",
	}

	c.HTML(http.StatusOK, "signup", data)
}

// Signup handles account creation
func (h *AuthHandler) Signup(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.SignUp(email, password)
	if err != nil {
		data := gin.H{
			"Title": "Create Account",
			"Email": email,
			"Error": err.Error(),
		}
		c.HTML(http.StatusBadRequest, "signup", data)
		return
	}

	if err := middleware.SetSession(c, user.ID.String(), user.Email, user.Name); err != nil {
		c.Redirect(http.StatusFound, "/login?error=session_creation_failed")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}
