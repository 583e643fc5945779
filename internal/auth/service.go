package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/core/password"
	"github.com/matteocalo/photodesk/internal/user"
)

type UserLookup interface {
	GetByID(id int64) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
}

type Service struct {
	users          UserLookup
	tokenGenerator TokenGenerator
	hasher         *password.Hasher
	logger         *slog.Logger
}

func NewService(users UserLookup, tokenGen TokenGenerator, hasher *password.Hasher, logger *slog.Logger) *Service {
	return &Service{
		users:          users,
		tokenGenerator: tokenGen,
		hasher:         hasher,
		logger:         logger,
	}
}

func NewJWTTokenGenerator(secret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if refreshTTL == 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &JWTTokenGenerator{
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}
}

// Authenticate resolves the login as an email when it contains '@', otherwise as a username.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, internal.NewValidationErrorFrom(err)
	}

	login := strings.TrimSpace(dto.Login)
	var (
		u   *user.User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = s.users.GetByEmail(strings.ToLower(login))
	} else {
		u, err = s.users.GetByUsername(login)
	}
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.logger.Error("login lookup failed", "error", err)
		}
		return AuthTokens{}, invalidCredentials()
	}

	if !s.hasher.Matches(u.PasswordHash, dto.Password) {
		s.logger.Warn("login rejected", "user_id", u.ID)
		return AuthTokens{}, invalidCredentials()
	}

	return s.issue(u.ID, u.Username)
}

// RefreshTokens exchanges a valid refresh token for a new pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return AuthTokens{}, tokenError(err)
	}
	if _, err := s.users.GetByID(claims.UserID); err != nil {
		return AuthTokens{}, tokenError(ErrInvalidToken)
	}
	return s.issue(claims.UserID, claims.Username)
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.tokenGenerator.ValidateToken(tokenString, TokenTypeAccess)
	if err != nil {
		return nil, tokenError(err)
	}
	return claims, nil
}

func (s *Service) issue(userID int64, username string) (AuthTokens, error) {
	accessToken, expiresAt, err := s.tokenGenerator.GenerateAccessToken(userID, username)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to sign access token", err)
	}
	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(userID, username)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to sign refresh token", err)
	}
	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

func invalidCredentials() error {
	return internal.NewUnauthorizedError("invalid credentials", internal.ErrCodeInvalidCredentials).WithCause(ErrInvalidCredentials)
}

func tokenError(err error) error {
	if errors.Is(err, ErrTokenExpired) {
		return internal.NewUnauthorizedError("token expired", internal.ErrCodeTokenExpired).WithCause(err)
	}
	return internal.NewUnauthorizedError("invalid token", internal.ErrCodeInvalidToken).WithCause(err)
}

// GenerateAccessToken creates a new access token
func (j *JWTTokenGenerator) GenerateAccessToken(userID int64, username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(j.AccessTokenTTL)
	token, err := j.sign(userID, username, TokenTypeAccess, expiresAt)
	return token, expiresAt, err
}

// GenerateRefreshToken creates a new refresh token
func (j *JWTTokenGenerator) GenerateRefreshToken(userID int64, username string) (string, error) {
	return j.sign(userID, username, TokenTypeRefresh, time.Now().Add(j.RefreshTokenTTL))
}

func (j *JWTTokenGenerator) sign(userID int64, username, tokenType string, expiresAt time.Time) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken validates a JWT token of the given type and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != tokenType || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
