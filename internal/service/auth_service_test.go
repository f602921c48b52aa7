package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gd-arcade/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_IssueToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokenSvc := mocks.NewMockTokenService(ctrl)
		svc := NewAuthService(tokenSvc, zerolog.Nop())

		expiresAt := testNow.Add(time.Hour)
		tokenSvc.EXPECT().Generate(testWallet).Return("signed-token", expiresAt, nil)

		token, exp, err := svc.IssueToken(ctx, testWallet)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, expiresAt, exp)
	})

	t.Run("invalid wallet address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewAuthService(mocks.NewMockTokenService(ctrl), zerolog.Nop())

		_, _, err := svc.IssueToken(ctx, "0x123")
		assertAppError(t, err, "AUTH_002")
	})

	t.Run("signing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokenSvc := mocks.NewMockTokenService(ctrl)
		svc := NewAuthService(tokenSvc, zerolog.Nop())

		tokenSvc.EXPECT().Generate(testWallet).Return("", time.Time{}, errors.New("bad key"))

		_, _, err := svc.IssueToken(ctx, testWallet)
		assertAppError(t, err, "SYS_001")
	})
}
