// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations bootstraps the MongoDB indexes the server relies on.
// Index creation is idempotent, so Migrate runs on every start-up.
package migrations

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexMigration lists the indexes of one collection.
type indexMigration struct {
	collection string
	indexes    []mongo.IndexModel
}

var migrations = []indexMigration{
	{
		collection: "users",
		indexes: []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetName("username_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
		},
	},
	{
		collection: "subscriptions",
		indexes: []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "channel", Value: 1}},
				Options: options.Index().SetName("channel"),
			},
			{
				Keys:    bson.D{{Key: "subscriber", Value: 1}},
				Options: options.Index().SetName("subscriber"),
			},
		},
	},
	{
		collection: "videos",
		indexes: []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "owner", Value: 1}},
				Options: options.Index().SetName("owner"),
			},
		},
	},
}

// Migrate creates the indexes of every collection. Existing indexes with the
// same definition are left untouched.
func Migrate(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	for _, m := range migrations {
		if _, err := db.Collection(m.collection).Indexes().CreateMany(ctx, m.indexes); err != nil {
			return fmt.Errorf("migration error creating indexes on %q: %w", m.collection, err)
		}
	}

	return nil
}
