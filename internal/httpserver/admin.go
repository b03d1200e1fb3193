package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *api) login(c *gin.Context) {
	var req loginRequest
	if !a.bindJSON(c, &req) {
		return
	}

	sess, err := a.deps.Admins.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (a *api) logout(c *gin.Context) {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := a.deps.Admins.Logout(c.Request.Context(), token); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

type forgotPasswordRequest struct {
	Username string `json:"username"`
}

func (a *api) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !a.bindJSON(c, &req) {
		return
	}

	if err := a.deps.Admins.ForgotPassword(c.Request.Context(), req.Username); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reset link sent"})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (a *api) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !a.bindJSON(c, &req) {
		return
	}

	err := a.deps.Admins.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (a *api) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if !a.bindJSON(c, &req) {
		return
	}

	admin := currentAdmin(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	err := a.deps.Admins.ChangePassword(c.Request.Context(), admin.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
