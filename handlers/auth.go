package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/services"
)

type AuthHandler struct {
	Service *services.VaultService
}

func NewAuthHandler(service *services.VaultService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// Status reports whether the vault passphrase has been configured, so the
// client knows whether to show the setup or the unlock screen.
func (h *AuthHandler) Status(c *gin.Context) {
	configured, err := h.Service.Configured(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": configured})
}

// Setup creates the vault passphrase once. Repeated calls get 409.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req models.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passphrase must be at least 8 characters"})
		return
	}

	err := h.Service.Setup(c.Request.Context(), req.Passphrase)
	if errors.Is(err, services.ErrVaultConfigured) {
		c.JSON(http.StatusConflict, gin.H{"error": "Vault is already configured"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vault configured"})
}

// Login exchanges the passphrase (plus a TOTP code when enabled) for an
// access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, totpEnabled, err := h.Service.Login(c.Request.Context(), req.Passphrase, req.Code)
	switch {
	case errors.Is(err, services.ErrVaultNotConfigured):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vault is not configured"})
		return
	case errors.Is(err, services.ErrTOTPRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Two-factor code required", "totp_required": true})
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	case err != nil:
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		AccessToken: token,
		TOTPEnabled: totpEnabled,
	})
}

// SetupTOTP generates a secret and provisioning URL. Two-factor activates
// only after the first code is verified.
func (h *AuthHandler) SetupTOTP(c *gin.Context) {
	secret, url, err := h.Service.SetupTOTP(c.Request.Context())
	if errors.Is(err, services.ErrVaultNotConfigured) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vault is not configured"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"secret": secret, "url": url})
}

func (h *AuthHandler) VerifyTOTP(c *gin.Context) {
	var req models.TOTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.VerifyTOTP(c.Request.Context(), req.Code)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid code"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication enabled"})
}

func (h *AuthHandler) DisableTOTP(c *gin.Context) {
	var req models.TOTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.DisableTOTP(c.Request.Context(), req.Code)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid code"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication disabled"})
}
