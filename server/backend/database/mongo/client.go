/*
 * Copyright 2025 The TaskHub Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package mongo implements the database interface using MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/logging"
)

// Client is a client that connects to Mongo DB and reads or saves TaskHub
// data. IDs are stored as their hex string representation.
type Client struct {
	config *Config
	client *mongo.Client
}

// Dial creates an instance of Client and dials the given MongoDB.
func Dial(conf *Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseConnectionTimeout())
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(conf.ConnectionURI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, conf.ParsePingTimeout())
	defer cancel()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if err := ensureIndexes(ctx, client.Database(conf.Database)); err != nil {
		return nil, err
	}

	logging.DefaultLogger().Infof("MongoDB connected, URI: %s, DB: %s", conf.ConnectionURI, conf.Database)

	return &Client{
		config: conf,
		client: client,
	}, nil
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("close mongo client: %w", err)
	}

	return nil
}

func (c *Client) collection(name string, opts ...options.Lister[options.CollectionOptions]) *mongo.Collection {
	return c.client.Database(c.config.Database).Collection(name, opts...)
}

// CreateUserInfo creates a new user with the given handle.
func (c *Client) CreateUserInfo(
	ctx context.Context,
	handle, name, hashedPassword string,
) (*database.UserInfo, error) {
	info := database.NewUserInfo(handle, name, hashedPassword)
	info.ID = database.NewID()

	if _, err := c.collection(ColUsers).InsertOne(ctx, bson.M{
		"_id":             info.ID,
		"handle":          info.Handle,
		"name":            info.Name,
		"hashed_password": info.HashedPassword,
		"created_at":      info.CreatedAt,
	}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", handle, database.ErrUserAlreadyExists)
		}

		return nil, fmt.Errorf("create user info: %w", err)
	}

	return info, nil
}

// FindUserInfoByID returns a user by ID.
func (c *Client) FindUserInfoByID(ctx context.Context, id types.ID) (*database.UserInfo, error) {
	result := c.collection(ColUsers).FindOne(ctx, bson.M{
		"_id": id,
	})

	info := database.UserInfo{}
	if err := result.Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &info, nil
}

// FindUserInfoByHandle returns a user by handle.
func (c *Client) FindUserInfoByHandle(ctx context.Context, handle string) (*database.UserInfo, error) {
	result := c.collection(ColUsers).FindOne(ctx, bson.M{
		"handle": handle,
	})

	info := database.UserInfo{}
	if err := result.Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", handle, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &info, nil
}

// CreateProjectInfo creates a new project with the creator as its sole
// owner-role membership.
func (c *Client) CreateProjectInfo(
	ctx context.Context,
	name, description string,
	owner types.ID,
) (*database.ProjectInfo, error) {
	info := database.NewProjectInfo(name, description, owner)
	info.ID = database.NewID()

	if _, err := c.collection(ColProjects).InsertOne(ctx, info); err != nil {
		return nil, fmt.Errorf("create project info: %w", err)
	}

	return info, nil
}

// FindProjectInfoByID returns a project aggregate by ID.
func (c *Client) FindProjectInfoByID(ctx context.Context, id types.ID) (*database.ProjectInfo, error) {
	result := c.collection(ColProjects).FindOne(ctx, bson.M{
		"_id": id,
	})

	info := database.ProjectInfo{}
	if err := result.Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("decode project info: %w", err)
	}

	return &info, nil
}

// FindProjectInfosByMember returns all projects containing a membership for
// the given user.
func (c *Client) FindProjectInfosByMember(
	ctx context.Context,
	userID types.ID,
) ([]*database.ProjectInfo, error) {
	cursor, err := c.collection(ColProjects).Find(ctx, bson.M{
		"members.user_id": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("find projects by member: %w", err)
	}

	var infos []*database.ProjectInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch projects by member: %w", err)
	}

	return infos, nil
}

// FindProjectInfoByInviteCode returns the project whose invite-code set
// contains the given code.
func (c *Client) FindProjectInfoByInviteCode(
	ctx context.Context,
	code string,
) (*database.ProjectInfo, error) {
	result := c.collection(ColProjects).FindOne(ctx, bson.M{
		"invite_codes": code,
	})

	info := database.ProjectInfo{}
	if err := result.Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrInviteNotFound
		}
		return nil, fmt.Errorf("decode project info: %w", err)
	}

	return &info, nil
}

// UpdateProjectInfo replaces the stored project document with the given
// aggregate.
func (c *Client) UpdateProjectInfo(ctx context.Context, info *database.ProjectInfo) error {
	result, err := c.collection(ColProjects).ReplaceOne(ctx, bson.M{
		"_id": info.ID,
	}, info)
	if err != nil {
		return fmt.Errorf("replace project info: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", info.ID, database.ErrProjectNotFound)
	}

	return nil
}
