package auth

import (
	"strconv"
	"time"

	"majorexplorer/config"
	"majorexplorer/internal/domain/service"
	"majorexplorer/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess   = "access"
	defaultAccessTTL  = 15 * time.Minute
	defaultSigningAlg = "HS256"
)

// accessClaims are the claims carried by access tokens.
type accessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	issuer       string
	now          func() time.Time
}

// NewJWTService returns nil when token issuing is disabled, so callers treat the service as optional.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if !cfg.Auth.IssueTokens {
		return nil, nil
	}
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	ttl := cfg.Auth.AccessTokenTTL
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		issuer:       cfg.Env.ServiceName,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed HS256 token whose subject is the account ID.
func (s *jwtService) GenerateAccessToken(accountID int64) (*service.AccessToken, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := accessClaims{
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(accountID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &service.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateAccessToken checks signature, expiry and token type and returns the subject account ID.
func (s *jwtService) ValidateAccessToken(tokenString string) (int64, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{defaultSigningAlg}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return 0, errors.Wrap(service.ErrInvalidToken, "failed to parse token")
	}

	if claims.Type != tokenTypeAccess {
		return 0, errors.Wrap(service.ErrInvalidToken, "unexpected token type")
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, errors.Wrap(service.ErrInvalidToken, "invalid subject")
	}

	return accountID, nil
}
