package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/domain/model"
)

func newTestTokenService() *TokenServiceImpl {
	return NewTokenService(TokenConfig{SecretKey: "secret", Issuer: "catering-service", TTL: time.Hour}).(*TokenServiceImpl)
}

func TestTokenService_MintAndValidate(t *testing.T) {
	svc := newTestTokenService()
	actor := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}

	token, err := svc.Mint(actor)
	require.NoError(t, err)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestTokenService_MintRejectsInvalidActor(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Mint(model.Actor{Type: model.ActorUser})
	assert.Error(t, err)

	_, err = svc.Mint(model.Actor{ID: primitive.NewObjectID(), Type: "ADMIN"})
	assert.Error(t, err)
}

func TestTokenService_Validate(t *testing.T) {
	actor := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorUser}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewTokenService(TokenConfig{SecretKey: "other", Issuer: "catering-service"})
				tok, err := other.Mint(actor)
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				other := NewTokenService(TokenConfig{SecretKey: "secret", Issuer: "someone-else"})
				tok, err := other.Mint(actor)
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				old := newTestTokenService()
				old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
				tok, err := old.Mint(actor)
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "subject is not an object id",
			token: func(t *testing.T) string {
				claims := ActorClaims{
					ActorType: model.ActorUser,
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   "user-1",
						Issuer:    "catering-service",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "unknown actor type",
			token: func(t *testing.T) string {
				claims := ActorClaims{
					ActorType: "ADMIN",
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   primitive.NewObjectID().Hex(),
						Issuer:    "catering-service",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
				require.NoError(t, err)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestTokenService()
			_, err := svc.Validate(tt.token(t))
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewTokenConfigFromAuthConfig(t *testing.T) {
	cfg := NewTokenConfigFromAuthConfig(config.AuthConfig{JWTSecretKey: "k", JWTIssuer: "iss", TokenTTL: time.Minute})
	assert.Equal(t, TokenConfig{SecretKey: "k", Issuer: "iss", TTL: time.Minute}, cfg)
}
