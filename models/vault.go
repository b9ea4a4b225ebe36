package models

import "time"

// Vault is the single-user lock record for the store. While no passphrase
// has been configured the vault is open and the API is unauthenticated.
type Vault struct {
	PassphraseHash string    `json:"passphrase_hash"`
	TOTPSecret     string    `json:"totp_secret,omitempty"`
	TOTPEnabled    bool      `json:"totp_enabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SetupRequest configures the vault passphrase.
type SetupRequest struct {
	Passphrase string `json:"passphrase" binding:"required,min=8"`
}

// LoginRequest unlocks the vault. Code carries the TOTP code when two-factor
// is enabled.
type LoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
	Code       string `json:"code"`
}

// AuthResponse returns the access token for subsequent requests.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TOTPEnabled bool   `json:"totp_enabled"`
}

// TOTPVerifyRequest confirms a TOTP enrollment or disables it.
type TOTPVerifyRequest struct {
	Code string `json:"code" binding:"required"`
}
