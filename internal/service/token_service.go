package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/domain/model"
)

// ErrInvalidToken is returned for malformed, expired or foreign bearer tokens.
var ErrInvalidToken = errors.New("invalid token")

// ActorClaims carries the actor identity inside a bearer token.
// The subject is the actor's hex ObjectID.
type ActorClaims struct {
	ActorType model.ActorType `json:"actor_type"`
	jwt.RegisteredClaims
}

// TokenService mints and validates actor bearer tokens.
type TokenService interface {
	// Mint signs a token for actor valid for the configured TTL.
	Mint(actor model.Actor) (string, error)
	// Validate parses tokenString and returns the actor it identifies.
	Validate(tokenString string) (model.Actor, error)
}

// TokenServiceImpl implements TokenService with HS256 tokens.
type TokenServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey: authConfig.JWTSecretKey,
		Issuer:    authConfig.JWTIssuer,
		TTL:       authConfig.TokenTTL,
	}
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) TokenService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Mint signs a token for actor.
func (s *TokenServiceImpl) Mint(actor model.Actor) (string, error) {
	if actor.ID.IsZero() || !actor.Type.Valid() {
		return "", fmt.Errorf("cannot mint token for actor %q of type %q", actor.ID.Hex(), actor.Type)
	}
	now := s.now()
	claims := ActorClaims{
		ActorType: actor.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.Hex(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses tokenString and returns the actor it identifies.
func (s *TokenServiceImpl) Validate(tokenString string) (model.Actor, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &ActorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return model.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !token.Valid || !claims.ActorType.Valid() {
		return model.Actor{}, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return model.Actor{}, ErrInvalidToken
	}
	return model.Actor{ID: id, Type: claims.ActorType}, nil
}
