// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection         = "users"
	videosCollection        = "videos"
	subscriptionsCollection = "subscriptions"
)

// channelProfilePipeline builds the aggregation returning the public profile
// of the channel named username, with subscriber counters and whether
// viewerID is subscribed to it.
func channelProfilePipeline(username string, viewerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: subscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: subscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribedTo"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscriberCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "channelsSubscribedToCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
			{Key: "isSubscribed", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{viewerID, "$subscribers.subscriber"}}}},
				{Key: "then", Value: true},
				{Key: "else", Value: false},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "fullName", Value: 1},
			{Key: "username", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscriberCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
		}}},
	}
}

// watchHistoryPipeline builds the aggregation resolving the watch history of
// userID into videos, each with its owner reduced to a short profile.
func watchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	ownerLookup := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$project", Value: bson.D{
					{Key: "fullName", Value: 1},
					{Key: "username", Value: 1},
					{Key: "avatar", Value: 1},
				}}},
			}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
		}}},
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: videosCollection},
			{Key: "localField", Value: "watchHistory"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "watchHistory"},
			{Key: "pipeline", Value: ownerLookup},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "watchHistory", Value: 1}}}},
	}
}

// usernameOrEmailFilter matches a user by username or email, skipping empty
// arguments. Returns nil when both are empty.
func usernameOrEmailFilter(username, email string) bson.D {
	var or bson.A
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		return nil
	}

	return bson.D{{Key: "$or", Value: or}}
}

// publicUserProjection hides the credential fields.
var publicUserProjection = bson.D{
	{Key: "password", Value: 0},
	{Key: "refreshToken", Value: 0},
}
