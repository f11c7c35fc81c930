// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user documents in the "users" collection and the read-only
// aggregations joining "subscriptions" and "videos".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	users  *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database and logger.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  db.Collection(usersCollection),
		logger: logger,
	}
}

// CreateUser inserts a new user document and returns it with the generated
// ObjectID and timestamps. Username and email are stored lowercased and
// trimmed.
//
// Error handling:
//   - duplicate key on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC().Truncate(time.Millisecond)
	user.ID = primitive.NewObjectID()
	user.Username = normalize(user.Username)
	user.Email = normalize(user.Email)
	user.FullName = strings.TrimSpace(user.FullName)
	user.RefreshToken = ""
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.WatchHistory == nil {
		user.WatchHistory = []primitive.ObjectID{}
	}

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByID returns the user document, credentials included.
func (r *userRepository) FindUserByID(ctx context.Context, userID primitive.ObjectID) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", bson.D{{Key: "_id", Value: userID}})
}

// FindUserByUsernameOrEmail returns the first user whose username or email
// matches. Empty arguments are not matched.
func (r *userRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	filter := usernameOrEmailFilter(normalize(username), normalize(email))
	if filter == nil {
		return models.User{}, ErrNoUserWasFound
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsernameOrEmail", filter)
}

// ExistsByUsernameOrEmail reports whether a user holds the username or the
// email.
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	log := logger.FromContext(ctx)

	filter := usernameOrEmailFilter(normalize(username), normalize(email))
	if filter == nil {
		return false, nil
	}

	count, err := r.users.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByUsernameOrEmail").Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// UpdateAccount replaces fullName and email and returns the updated user
// without credentials.
func (r *userRepository) UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullName, email string) (models.User, error) {
	return r.updateAndReturn(ctx, "*userRepository.UpdateAccount", userID, bson.D{
		{Key: "fullName", Value: strings.TrimSpace(fullName)},
		{Key: "email", Value: normalize(email)},
	})
}

// UpdateAvatar replaces the avatar URL and returns the updated user without
// credentials.
func (r *userRepository) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) (models.User, error) {
	return r.updateAndReturn(ctx, "*userRepository.UpdateAvatar", userID, bson.D{
		{Key: "avatar", Value: avatarURL},
	})
}

// UpdateCoverImage replaces the cover image URL and returns the updated user
// without credentials.
func (r *userRepository) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, coverImageURL string) (models.User, error) {
	return r.updateAndReturn(ctx, "*userRepository.UpdateCoverImage", userID, bson.D{
		{Key: "coverImage", Value: coverImageURL},
	})
}

// UpdatePassword stores a new password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, userID primitive.ObjectID, passwordHash string) error {
	return r.updateOne(ctx, "*userRepository.UpdatePassword", userID, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "password", Value: passwordHash},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	})
}

// SetRefreshToken stores the current refresh token of the user. Any previous
// token stops being accepted.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID primitive.ObjectID, refreshToken string) error {
	return r.updateOne(ctx, "*userRepository.SetRefreshToken", userID, bson.D{
		{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: refreshToken}}},
	})
}

// UnsetRefreshToken removes the stored refresh token.
func (r *userRepository) UnsetRefreshToken(ctx context.Context, userID primitive.ObjectID) error {
	return r.updateOne(ctx, "*userRepository.UnsetRefreshToken", userID, bson.D{
		{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: 1}}},
	})
}

// GetChannelProfile runs the channel profile aggregation for username.
// Returns [ErrChannelNotFound] when no user holds the username.
func (r *userRepository) GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (models.ChannelProfile, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.users.Aggregate(ctx, channelProfilePipeline(normalize(username), viewerID))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetChannelProfile").Msg("error running aggregation")
		return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var profiles []models.ChannelProfile
	if err = cursor.All(ctx, &profiles); err != nil {
		log.Err(err).Str("func", "*userRepository.GetChannelProfile").Msg("error decoding aggregation result")
		return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	if len(profiles) == 0 {
		return models.ChannelProfile{}, ErrChannelNotFound
	}

	return profiles[0], nil
}

// GetWatchHistory resolves the watch history of the user into videos with
// their owners. A missing user yields an empty list.
func (r *userRepository) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.WatchedVideo, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.users.Aggregate(ctx, watchHistoryPipeline(userID))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetWatchHistory").Msg("error running aggregation")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var results []struct {
		WatchHistory []models.WatchedVideo `bson:"watchHistory"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		log.Err(err).Str("func", "*userRepository.GetWatchHistory").Msg("error decoding aggregation result")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	if len(results) == 0 || results[0].WatchHistory == nil {
		return []models.WatchedVideo{}, nil
	}

	return results[0].WatchHistory, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName string, filter bson.D) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := r.users.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) updateAndReturn(ctx context.Context, funcName string, userID primitive.ObjectID, set bson.D) (models.User, error) {
	log := logger.FromContext(ctx)

	set = append(set, bson.E{Key: "updatedAt", Value: time.Now().UTC()})
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(publicUserProjection)

	var user models.User
	err := r.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: userID}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&user)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return models.User{}, ErrNoUserWasFound
		case mongo.IsDuplicateKeyError(err):
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) updateOne(ctx context.Context, funcName string, userID primitive.ObjectID, update bson.D) error {
	log := logger.FromContext(ctx)

	result, err := r.users.UpdateByID(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
