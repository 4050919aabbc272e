package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vasilika/portfolio-tracker-backend/config"
)

// TokenIssuer is the iss claim stamped into every access token.
const TokenIssuer = "portfolio-tracker"

// RoleAdmin is the role claim value required for admin routes.
const RoleAdmin = "ADMIN"

// ErrInvalidCredentials is returned for a wrong username and a wrong
// password alike, so callers cannot probe which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims is the JWT payload for admin access tokens.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Token is the login result handed back to the client.
type Token struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AuthService verifies the single configured admin credential and issues
// signed, time-boxed bearer tokens. No token state is kept server-side;
// logout is client-side token discard.
type AuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService creates the auth service from the startup config.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPasswordHash),
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.TokenTTL,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Login checks the credentials and returns a signed HS256 token.
// The bcrypt comparison always runs, even for an unknown username, so
// response timing does not separate the two failure cases either.
func (s *AuthService) Login(username, password string) (*Token, error) {
	userOK := username == s.username
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))

	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Roles: []string{RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   s.username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
