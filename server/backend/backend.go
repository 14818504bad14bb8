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

// Package backend provides the backend implementation of the server. This
// package is responsible for managing the database and the other resources
// shared by the business logic packages.
package backend

import (
	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend/database"
	memdb "github.com/taskhub-team/taskhub/server/backend/database/memory"
	"github.com/taskhub-team/taskhub/server/backend/database/mongo"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/logging"
)

// Backend manages the server's backend such as database and lockers.
type Backend struct {
	Config *Config

	// DB is the database instance.
	DB database.Database

	// Lockers is used to serialize the load-mutate-save sequence per project.
	Lockers *sync.LockerManager
}

// New creates a new instance of Backend. When mongoConf is nil the in-memory
// database is used instead.
func New(conf *Config, mongoConf *mongo.Config) (*Backend, error) {
	var db database.Database
	var err error
	if mongoConf != nil {
		db, err = mongo.Dial(mongoConf)
		if err != nil {
			return nil, err
		}
	} else {
		db, err = memdb.New()
		if err != nil {
			return nil, err
		}
		logging.DefaultLogger().Warn("runs in memory mode: all data is not stored")
	}

	return &Backend{
		Config:  conf,
		DB:      db,
		Lockers: sync.New(),
	}, nil
}

// Shutdown closes all resources of this instance.
func (b *Backend) Shutdown() error {
	return b.DB.Close()
}

// ProjectLocker returns the locker that serializes mutations of the given
// project aggregate.
func (b *Backend) ProjectLocker(id types.ID) sync.Locker {
	return b.Lockers.Locker(sync.NewKey("project-" + id.String()))
}
