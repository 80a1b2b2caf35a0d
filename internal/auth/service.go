package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"airline-crew-backend/internal/config"
	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// Claims represents the Keycloak access token payload
type Claims struct {
	jwt.RegisteredClaims
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	ResourceAccess map[string]struct {
		Roles []string `json:"roles"`
	} `json:"resource_access"`
}

// Role resolves the application role from realm and client roles.
// Admin wins over dispatcher; unknown tokens get read-only access.
func (c *Claims) Role() models.UserRole {
	roles := make(map[string]bool)
	for _, r := range c.RealmAccess.Roles {
		roles[r] = true
	}
	for _, access := range c.ResourceAccess {
		for _, r := range access.Roles {
			roles[r] = true
		}
	}

	switch {
	case roles["admin"] || roles["ADMIN"]:
		return models.RoleAdmin
	case roles["dispatcher"] || roles["DISPATCHER"]:
		return models.RoleDispatcher
	default:
		return models.RoleViewer
	}
}

// TokenResponse is returned from login and refresh operations
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService handles Keycloak token exchange and validation
type AuthService struct {
	cfg       *config.Config
	userRepo  repository.UserRepositoryInterface
	oauthCfg  *oauth2.Config
	publicKey *rsa.PublicKey
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	svc := &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.KeycloakClientID,
			ClientSecret: cfg.KeycloakClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL(),
				TokenURL: cfg.TokenURL(),
			},
			Scopes: []string{"openid", "profile", "email"},
		},
	}

	if cfg.JWTPublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTPublicKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse JWT public key: %w", err)
		}
		svc.publicKey = key
	}

	return svc, nil
}

// Login exchanges user credentials for tokens using the password grant
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	token, err := s.oauthCfg.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		logrus.WithField("username", username).WithError(err).Warn("Login failed")
		return nil, &apperrors.AuthenticationError{Message: "invalid credentials"}
	}

	return tokenResponse(token), nil
}

// Refresh exchanges a refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	src := s.oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, &apperrors.AuthenticationError{Message: "refresh token is invalid or expired"}
	}

	return tokenResponse(token), nil
}

func tokenResponse(token *oauth2.Token) *TokenResponse {
	resp := &TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   int64(time.Until(token.Expiry).Seconds()),
	}
	if rt, ok := token.Extra("refresh_token").(string); ok {
		resp.RefreshToken = rt
	} else {
		resp.RefreshToken = token.RefreshToken
	}
	return resp
}

// ValidateToken parses and verifies an access token, returning its claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	var methods []string
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if s.publicKey != nil {
			return s.publicKey, nil
		}
		return []byte(s.cfg.JWTSecret), nil
	}
	if s.publicKey != nil {
		methods = []string{jwt.SigningMethodRS256.Alg()}
	} else {
		methods = []string{jwt.SigningMethodHS256.Alg()}
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// SyncUser upserts the local user record from token claims. Users are
// created on first login with the role carried by the token.
func (s *AuthService) SyncUser(claims *Claims) (*models.User, error) {
	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetBySubject(subject)
	if err == nil {
		// Keep role and profile in sync with Keycloak
		role := claims.Role()
		if user.Role != role || user.Email != claims.Email || user.FullName != claims.Name {
			user.Role = role
			user.Email = claims.Email
			user.FullName = claims.Name
			if updateErr := s.userRepo.Update(user); updateErr != nil {
				logrus.WithError(updateErr).Warn("Failed to sync user profile")
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("sync user", err)
	}

	user = &models.User{
		Subject:  subject,
		Username: claims.PreferredUsername,
		Email:    claims.Email,
		FullName: claims.Name,
		Role:     claims.Role(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.NewStorageError("create user", err)
	}

	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"role":     user.Role,
	}).Info("User created from token claims")

	return user, nil
}
