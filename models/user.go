// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document stored in the "users" collection.
// Credential fields are never serialized to JSON.
type User struct {
	// ID is the document identifier assigned by the database.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	// Username is the unique, lowercase handle of the user.
	// It also serves as the public channel name.
	Username string `bson:"username" json:"username"`

	// Email is the unique, lowercase e-mail address of the user.
	Email string `bson:"email" json:"email"`

	// FullName is the display name of the user.
	FullName string `bson:"fullName" json:"fullName"`

	// Avatar is the media host URL of the profile picture. Required.
	Avatar string `bson:"avatar" json:"avatar"`

	// CoverImage is the media host URL of the channel banner. May be empty.
	CoverImage string `bson:"coverImage" json:"coverImage"`

	// WatchHistory lists the videos watched by the user, oldest first.
	WatchHistory []primitive.ObjectID `bson:"watchHistory" json:"watchHistory"`

	// Password stores the bcrypt hash of the peppered password.
	Password string `bson:"password" json:"-"`

	// RefreshToken stores the only refresh token currently accepted for the
	// user. Empty after logout.
	RefreshToken string `bson:"refreshToken,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CollectionName returns the name of the collection holding users.
func (User) CollectionName() string {
	return "users"
}
