package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenType distinguishes access tokens from refresh tokens inside claims.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Claims defines JWT claims. The RegisteredClaims ID (jti) keys the blacklist.
type Claims struct {
	UserID    string    `json:"user_id"`
	TokenType TokenType `json:"type"`
	jwt.RegisteredClaims
}

// AuthConfig carries token settings from configuration into the service.
type AuthConfig struct {
	SigningKey string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthService handles signup, login, logout and token verification.
type AuthService struct {
	users  repository.Users
	tokens repository.RevokedTokens
	cfg    AuthConfig
}

func NewAuthService(users repository.Users, tokens repository.RevokedTokens, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, tokens: tokens, cfg: cfg}
}

const (
	minPasswordLen = 8
	maxEmailLen    = 254 // RFC 5321
	maxNameLen     = 150
	minUsernameLen = 3
)

// Deny-list of frequently used passwords, checked case-insensitively.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"passw0rd":   {},
	"12345678":   {},
	"123456789":  {},
	"1234567890": {},
	"qwerty123":  {},
	"letmein1":   {},
	"iloveyou":   {},
	"sunshine":   {},
}

// dummyBcryptHash is compared against on login for unknown emails, so the
// miss path costs roughly the same as the hit path.
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SignUp validates the input, checks email/username uniqueness and stores a
// new user with a bcrypt password hash. Plaintext is never persisted.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (models.User, error) {
	firstName, err := validateName("first name", in.FirstName, maxNameLen)
	if err != nil {
		return models.User{}, err
	}
	lastName, err := validateName("last name", in.LastName, maxNameLen)
	if err != nil {
		return models.User{}, err
	}
	username, err := validateUsername(in.Username)
	if err != nil {
		return models.User{}, err
	}
	email, err := validateEmail(in.Email)
	if err != nil {
		return models.User{}, err
	}
	if err := validatePassword(in.Password, username, email); err != nil {
		return models.User{}, err
	}

	if existing, err := s.users.GetByEmail(ctx, email); err != nil {
		return models.User{}, err
	} else if existing != nil {
		return models.User{}, invalidf("a user with this email already exists")
	}
	if existing, err := s.users.GetByUsername(ctx, username); err != nil {
		return models.User{}, err
	} else if existing != nil {
		return models.User{}, invalidf("a user with this username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Login verifies credentials and issues a fresh token pair. The failure is
// deliberately the same whether the email exists or the password is wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	if u == nil {
		// Burn a hash comparison so a missing email is not faster to probe.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyBcryptHash), []byte(password))
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(u.ID)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	return *u, pair, nil
}

// Logout blacklists the refresh token's jti. Revoking an already-revoked
// token is a no-op success. The token must belong to the calling user.
func (s *AuthService) Logout(ctx context.Context, userID, refreshToken string) error {
	claims, err := s.parseToken(refreshToken, TokenRefresh)
	if err != nil {
		return err
	}
	if claims.UserID != userID {
		return ErrInvalidToken
	}
	_, err = s.tokens.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time)
	return err
}

// Refresh rotates a refresh token: the presented token is claimed into the
// blacklist and a brand-new pair is issued. Claiming and checking are one
// write, so concurrent refreshes of the same token cannot both succeed and a
// blacklisted token can never mint another access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.parseToken(refreshToken, TokenRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	claimed, err := s.tokens.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time)
	if err != nil {
		return TokenPair{}, err
	}
	if !claimed {
		return TokenPair{}, ErrInvalidToken
	}
	return s.issueTokenPair(claims.UserID)
}

// Authenticate resolves an access token to a live user id.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (string, error) {
	claims, err := s.parseToken(accessToken, TokenAccess)
	if err != nil {
		return "", err
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidToken
	}
	return u.ID, nil
}

// issueTokenPair signs an access and a refresh token, each with its own jti.
func (s *AuthService) issueTokenPair(userID string) (TokenPair, error) {
	access, err := s.signToken(userID, TokenAccess, s.cfg.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.signToken(userID, TokenRefresh, s.cfg.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) signToken(userID string, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:    userID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	signed, err := token.SignedString([]byte(s.cfg.SigningKey))
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}

// parseToken verifies signature, expiry and token type.
func (s *AuthService) parseToken(tokenString string, want TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != want || claims.UserID == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

//
// Field validators shared with the account service.
//

func validateName(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalidf("%s cannot be empty", field)
	}
	if len(v) > max {
		return "", invalidf("%s cannot exceed %d characters", field, max)
	}
	return v, nil
}

func validateUsername(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalidf("username cannot be empty")
	}
	if len(v) < minUsernameLen {
		return "", invalidf("username must be at least %d characters long", minUsernameLen)
	}
	if len(v) > maxNameLen {
		return "", invalidf("username cannot exceed %d characters", maxNameLen)
	}
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return "", invalidf("username can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return v, nil
}

func validateEmail(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", invalidf("email cannot be empty")
	}
	if len(v) > maxEmailLen {
		return "", invalidf("email address is too long")
	}
	if _, err := mail.ParseAddress(v); err != nil {
		return "", invalidf("email address is not valid")
	}
	return v, nil
}

// validatePassword applies the complexity policy: minimum length, not purely
// numeric, not a known common password, not equal to the user's own fields.
func validatePassword(password, username, email string) error {
	if len(password) < minPasswordLen {
		return invalidf("password must be at least %d characters long", minPasswordLen)
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return invalidf("password cannot be entirely numeric")
	}
	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		return invalidf("password is too common")
	}
	if lower == strings.ToLower(username) || lower == email {
		return invalidf("password is too similar to your account details")
	}
	return nil
}
