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

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	// ColUsers is the name of the users collection.
	ColUsers = "users"
	// ColProjects is the name of the projects collection.
	ColProjects = "projects"
)

type collectionInfo struct {
	name    string
	indexes []mongo.IndexModel
}

// collectionInfos holds the indexes to ensure on startup. Memberships and
// invite codes are embedded in the project documents, so multikey indexes on
// them serve the membership and invite lookups.
var collectionInfos = []collectionInfo{
	{
		name: ColUsers,
		indexes: []mongo.IndexModel{{
			Keys:    bson.D{{Key: "handle", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
	},
	{
		name: ColProjects,
		indexes: []mongo.IndexModel{{
			Keys: bson.D{{Key: "members.user_id", Value: 1}},
		}, {
			Keys: bson.D{{Key: "invite_codes", Value: 1}},
		}},
	},
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, info := range collectionInfos {
		if len(info.indexes) == 0 {
			continue
		}

		if _, err := db.Collection(info.name).Indexes().CreateMany(ctx, info.indexes); err != nil {
			return fmt.Errorf("create indexes of %s: %w", info.name, err)
		}
	}

	return nil
}
