// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/store"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/MKhiriev/go-tubehub/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT token
// lifecycle. Passwords are peppered with HMAC-SHA256 before bcrypt so that
// the bcrypt input never exceeds its 72-byte limit.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// revocation remembers access tokens revoked on logout.
	revocation store.TokenRevocationStorage

	// media uploads registration images.
	media MediaService

	// passwordHashKey is the HMAC pepper applied before bcrypt. Must match
	// the value used at registration time.
	passwordHashKey string
	bcryptCost      int

	// Access and refresh tokens are signed with distinct secrets.
	accessTokenSecret  string
	accessTokenExpiry  time.Duration
	refreshTokenSecret string
	refreshTokenExpiry time.Duration

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	revocation store.TokenRevocationStorage,
	media MediaService,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:     userRepository,
		revocation:         revocation,
		media:              media,
		passwordHashKey:    cfg.PasswordHashKey,
		bcryptCost:         cost,
		accessTokenSecret:  cfg.AccessTokenSecret,
		accessTokenExpiry:  cfg.AccessTokenExpiry,
		refreshTokenSecret: cfg.RefreshTokenSecret,
		refreshTokenExpiry: cfg.RefreshTokenExpiry,
		tokenIssuer:        cfg.TokenIssuer,
		logger:             logger,
	}
}

// RegisterUser creates a new user account.
//
// The username/email uniqueness check runs before any upload. The avatar is
// mandatory: a missing avatar file or a failed avatar upload yields
// ErrAvatarRequired. A failed cover upload leaves the cover image empty.
//
// Returns the persisted user without credentials or:
//   - store.ErrUserAlreadyExists if the username or email is taken.
//   - ErrAvatarRequired as described above.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		a.discard(ctx, req.AvatarLocalPath, req.CoverImageLocalPath)
		return models.User{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if exists {
		a.discard(ctx, req.AvatarLocalPath, req.CoverImageLocalPath)
		return models.User{}, store.ErrUserAlreadyExists
	}

	if req.AvatarLocalPath == "" {
		a.discard(ctx, req.CoverImageLocalPath)
		return models.User{}, ErrAvatarRequired
	}

	avatar, cover, err := a.media.UploadProfileImages(ctx, req.AvatarLocalPath, req.CoverImageLocalPath)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("avatar upload failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrAvatarRequired, err)
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		a.rollbackAssets(ctx, avatar, cover)
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Avatar:     avatar.URL,
		CoverImage: cover.URL,
		Password:   passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		a.rollbackAssets(ctx, avatar, cover)
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, store.ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return withoutCredentials(user), nil
}

// Login authenticates an existing user by username or email.
//
// Returns the user without credentials and a fresh token pair, or:
//   - ErrUserDoesNotExist if neither username nor email matches.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.TokenPair{}, ErrUserDoesNotExist
		}
		log.Err(err).Msg("user search by username or email failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search failed: %w", err)
	}

	if !a.passwordMatches(user.Password, req.Password) {
		log.Warn().Str("user_id", user.ID.Hex()).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := a.issueTokenPair(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	return withoutCredentials(user), pair, nil
}

// Logout unsets the stored refresh token and revokes the access token for
// the rest of its lifetime.
func (a *authService) Logout(ctx context.Context, userID primitive.ObjectID, accessToken models.Token) error {
	if err := a.userRepository.UnsetRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("refresh token reset failed: %w", err)
	}

	ttl := time.Until(accessToken.ExpiresAt())
	if accessToken.ID() == "" || ttl <= 0 {
		return nil
	}

	if err := a.revocation.Revoke(ctx, accessToken.ID(), ttl); err != nil {
		return fmt.Errorf("access token revocation failed: %w", err)
	}

	return nil
}

// RefreshTokens verifies refreshToken against its signature and the copy
// stored on the user, then rotates both tokens.
//
// Returns:
//   - ErrRefreshTokenMissing if refreshToken is empty.
//   - ErrInvalidRefreshToken if the token fails verification or its user is gone.
//   - ErrRefreshTokenExpiredOrUsed if it is not the currently stored token.
func (a *authService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if refreshToken == "" {
		return models.TokenPair{}, ErrRefreshTokenMissing
	}

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSecret, a.tokenIssuer)
	if err != nil {
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrInvalidRefreshToken
		}
		return models.TokenPair{}, fmt.Errorf("user search failed: %w", err)
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return models.TokenPair{}, ErrRefreshTokenExpiredOrUsed
	}

	return a.issueTokenPair(ctx, user)
}

// ChangePassword replaces the password of userID.
//
// Returns ErrInvalidOldPassword when req.OldPassword does not match.
func (a *authService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.ChangePasswordRequest) error {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user search failed: %w", err)
	}

	if !a.passwordMatches(user.Password, req.OldPassword) {
		return ErrInvalidOldPassword
	}

	passwordHash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// Authenticate validates an access token, rejects revoked ones and loads
// the owner.
//
// Any verification failure, a revoked token or a missing user is normalised
// to ErrTokenIsExpiredOrInvalid.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(accessToken, a.accessTokenSecret, a.tokenIssuer)
	if err != nil {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.revocation.IsRevoked(ctx, token.ID())
	if err != nil {
		// fail closed
		log.Err(err).Msg("token revocation lookup failed")
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if revoked {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, models.Token{}, fmt.Errorf("user search failed: %w", err)
	}

	return withoutCredentials(user), token, nil
}

// issueTokenPair signs both tokens and stores the refresh token on the user.
func (a *authService) issueTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, models.Claims{
		UserID:   user.ID.Hex(),
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	}, a.accessTokenExpiry, a.accessTokenSecret)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, models.Claims{
		UserID: user.ID.Hex(),
	}, a.refreshTokenExpiry, a.refreshTokenSecret)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.SetRefreshToken(ctx, user.ID, refresh.String()); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access.String(), RefreshToken: refresh.String()}, nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(utils.HashString(password, a.passwordHashKey)), a.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}
	return string(hash), nil
}

func (a *authService) passwordMatches(hash, password string) bool {
	if hash == "" {
		return false
	}
	peppered := utils.HashString(password, a.passwordHashKey)
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(peppered)) == nil
}

// discard removes temp files of a request rejected before upload.
func (a *authService) discard(ctx context.Context, paths ...string) {
	a.media.Discard(ctx, paths...)
}

// rollbackAssets removes images uploaded for a registration that failed.
func (a *authService) rollbackAssets(ctx context.Context, assets ...models.MediaAsset) {
	log := logger.FromContext(ctx)

	for _, asset := range assets {
		if asset.PublicID == "" {
			continue
		}
		if err := a.media.Delete(ctx, asset.PublicID); err != nil {
			log.Err(err).Str("public_id", asset.PublicID).Msg("orphaned media asset")
		}
	}
}

func withoutCredentials(user models.User) models.User {
	user.Password = ""
	user.RefreshToken = ""
	return user
}
