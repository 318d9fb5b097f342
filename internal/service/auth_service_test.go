package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(repository.UserRepository{}, "test-secret", time.Hour, 24*time.Hour)

	user := &domain.User{ID: 42, Name: "Admin", Role: domain.RoleAdmin}
	pair, err := svc.issuePair(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	access, err := svc.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), access.UserID)
	assert.Equal(t, "admin", access.Role)
	assert.Equal(t, "access", access.TokenType)

	refresh, err := svc.Parse(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refresh.TokenType)
	assert.NotEqual(t, access.ID, refresh.ID)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer := NewAuthService(repository.UserRepository{}, "secret-a", time.Hour, time.Hour)
	verifier := NewAuthService(repository.UserRepository{}, "secret-b", time.Hour, time.Hour)

	user := &domain.User{ID: 1, Name: "X", Role: domain.RoleManager}
	pair, err := issuer.issuePair(user)
	require.NoError(t, err)

	_, err = verifier.Parse(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewAuthService(repository.UserRepository{}, "test-secret", time.Hour, time.Hour)
	_, err := svc.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
