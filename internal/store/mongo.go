// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/migrations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB bundles the MongoDB client with the application database.
type DB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo connects to MongoDB and pings the primary. The connect and
// ping are bounded by cfg.ConnectTimeout.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	// establish connection
	opts := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// ping database
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to database successfully")

	return &DB{
		Database: client.Database(cfg.Database),
		client:   client,
		logger:   log,
	}, nil
}

// Ping reports whether the primary is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Migrate creates the indexes the repositories rely on.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.Database)
}

// Close disconnects the client, waiting for in-flight operations until ctx
// is done.
func (db *DB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from database: %w", err)
	}
	return nil
}
