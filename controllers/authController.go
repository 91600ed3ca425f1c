package controllers

import (
	"net/http"
	"os"

	"civicseva-be/models"
	authUtils "civicseva-be/utils"

	"github.com/gin-gonic/gin"
)

// LoginUser issues the role cookie. There are no per-user credentials:
// citizens log in with just the role flag, admins additionally present the
// shared passcode when ADMIN_PASSCODE_HASH is configured.
func LoginUser(c *gin.Context) {
	var input struct {
		Role     string `json:"role" binding:"required"`
		Passcode string `json:"passcode,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.Role(input.Role)
	if !role.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	if role == models.RoleAdmin {
		passcodeHash := os.Getenv("ADMIN_PASSCODE_HASH")
		if passcodeHash != "" && !models.CheckPasscode(passcodeHash, input.Passcode) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
	}

	token, err := authUtils.GenerateRoleToken(string(role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// GetMe reports the authenticated role.
func GetMe(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// LogoutUser clears the auth_token cookie.
func LogoutUser(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
