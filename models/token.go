// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenKind distinguishes the two token flavours issued by the service.
// Each kind is signed with its own secret.
type TokenKind string

const (
	// AccessTokenKind authorizes API calls. Short lived.
	AccessTokenKind TokenKind = "access"

	// RefreshTokenKind is exchanged for a new token pair. Long lived; only the
	// latest refresh token stored on the user document is accepted.
	RefreshTokenKind TokenKind = "refresh"
)

// Claims is the JWT payload of both access and refresh tokens.
//
// Access tokens carry the profile fields; refresh tokens carry only the
// user identifier. The "_id" key is kept for compatibility with web clients
// that decode the token payload.
type Claims struct {
	UserID   string `json:"_id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a signed or parsed JWT together with its decoded claims.
type Token struct {
	// Raw is the underlying JWT used for signing and claim inspection.
	Raw *jwt.Token `json:"-"`

	// Claims holds the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID parses the "_id" claim into an ObjectID.
func (t *Token) GetUserID() (primitive.ObjectID, error) {
	userID, err := primitive.ObjectIDFromHex(t.Claims.UserID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error converting UserID from token to ObjectID: %w", err)
	}

	return userID, nil
}

// ID returns the unique token identifier ("jti" claim).
func (t *Token) ID() string {
	return t.Claims.ID
}

// ExpiresAt returns the expiry time of the token, or the zero time when the
// token carries no "exp" claim.
func (t *Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
