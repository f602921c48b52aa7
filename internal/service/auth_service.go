package service

import (
	"context"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService. Wallet ownership is
// asserted by the platform's upstream identity layer before a token is
// requested here; this service only checks the address shape and mints
// the bearer token.
type AuthServiceImpl struct {
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(tokenSvc ports.TokenService, log zerolog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		tokenSvc: tokenSvc,
		log:      log,
	}
}

// IssueToken exchanges a wallet address for a bearer token.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, walletAddress string) (string, time.Time, error) {
	if !domain.ValidWalletAddress(walletAddress) {
		return "", time.Time{}, apperror.ErrInvalidWalletAddress()
	}

	token, expiresAt, err := s.tokenSvc.Generate(walletAddress)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}

	s.log.Info().Str("wallet", walletAddress).Msg("token issued")
	return token, expiresAt, nil
}
