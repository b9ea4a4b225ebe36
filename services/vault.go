package services

import (
	"context"
	"errors"
	"time"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/storage"
	"github.com/piggypal/piggypal-api/utils"
)

var (
	ErrVaultConfigured    = errors.New("vault already configured")
	ErrVaultNotConfigured = errors.New("vault not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTOTPRequired       = errors.New("two-factor code required")
)

// VaultService manages the single-user lock on the store. Until a
// passphrase is configured the vault is open and requests pass through
// unauthenticated.
type VaultService struct {
	store *DomainStore
}

func NewVaultService(store *DomainStore) *VaultService {
	return &VaultService{store: store}
}

func (s *VaultService) load(ctx context.Context) (models.Vault, error) {
	var vault models.Vault
	err := s.store.get(ctx, KeyVault, &vault)
	if err != nil {
		return models.Vault{}, err
	}
	return vault, nil
}

// Configured reports whether a passphrase has been set.
func (s *VaultService) Configured(ctx context.Context) (bool, error) {
	_, err := s.load(ctx)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Setup creates the vault passphrase. It refuses to overwrite an existing one.
func (s *VaultService) Setup(ctx context.Context, passphrase string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	_, err := s.load(ctx)
	if err == nil {
		return ErrVaultConfigured
	}
	if !errors.Is(err, storage.ErrKeyNotFound) {
		return err
	}

	hash, err := utils.HashPassphrase(passphrase)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	vault := models.Vault{
		PassphraseHash: hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.put(ctx, KeyVault, vault); err != nil {
		return err
	}

	utils.SafeInfo("Vault passphrase configured")
	return nil
}

// Login checks the passphrase (and TOTP code when enabled) and issues an
// access token.
func (s *VaultService) Login(ctx context.Context, passphrase, code string) (string, bool, error) {
	vault, err := s.load(ctx)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", false, ErrVaultNotConfigured
	}
	if err != nil {
		return "", false, err
	}

	if !utils.CheckPassphrase(passphrase, vault.PassphraseHash) {
		return "", vault.TOTPEnabled, ErrInvalidCredentials
	}

	if vault.TOTPEnabled {
		if code == "" {
			return "", true, ErrTOTPRequired
		}
		if !utils.VerifyTOTP(vault.TOTPSecret, code) {
			return "", true, ErrInvalidCredentials
		}
	}

	token, err := utils.GenerateAccessToken("vault-owner")
	if err != nil {
		return "", vault.TOTPEnabled, err
	}
	return token, vault.TOTPEnabled, nil
}

// SetupTOTP generates a new secret and provisioning URL. Two-factor stays
// disabled until the first code is verified.
func (s *VaultService) SetupTOTP(ctx context.Context) (string, string, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	vault, err := s.load(ctx)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", "", ErrVaultNotConfigured
	}
	if err != nil {
		return "", "", err
	}

	secret, url, err := utils.GenerateTOTPSecret("vault-owner")
	if err != nil {
		return "", "", err
	}

	vault.TOTPSecret = secret
	vault.TOTPEnabled = false
	vault.UpdatedAt = time.Now().UTC()

	if err := s.store.put(ctx, KeyVault, vault); err != nil {
		return "", "", err
	}
	return secret, url, nil
}

// VerifyTOTP confirms the enrollment code and switches two-factor on.
func (s *VaultService) VerifyTOTP(ctx context.Context, code string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	vault, err := s.load(ctx)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return ErrVaultNotConfigured
	}
	if err != nil {
		return err
	}
	if vault.TOTPSecret == "" || !utils.VerifyTOTP(vault.TOTPSecret, code) {
		return ErrInvalidCredentials
	}

	vault.TOTPEnabled = true
	vault.UpdatedAt = time.Now().UTC()
	return s.store.put(ctx, KeyVault, vault)
}

// DisableTOTP turns two-factor off after validating a current code.
func (s *VaultService) DisableTOTP(ctx context.Context, code string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	vault, err := s.load(ctx)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return ErrVaultNotConfigured
	}
	if err != nil {
		return err
	}
	if !vault.TOTPEnabled || !utils.VerifyTOTP(vault.TOTPSecret, code) {
		return ErrInvalidCredentials
	}

	vault.TOTPSecret = ""
	vault.TOTPEnabled = false
	vault.UpdatedAt = time.Now().UTC()
	return s.store.put(ctx, KeyVault, vault)
}
