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

package server_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/server"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("fail read config file test", func(t *testing.T) {
		conf := server.NewConfig()
		assert.Equal(t, conf.APIAddr(), "localhost:"+strconv.Itoa(server.DefaultAPIPort))
		_, err := server.NewConfigFromFile("nowhere.yml")
		assert.Error(t, err)
		assert.Equal(t, conf.API.Port, server.DefaultAPIPort)
		assert.Equal(t, conf.Profiling.Port, server.DefaultProfilingPort)
	})

	t.Run("read config file test", func(t *testing.T) {
		conf, err := server.NewConfigFromFile("config.sample.yml")
		assert.NoError(t, err)

		assert.Equal(t, conf.API.Port, server.DefaultAPIPort)
		assert.Equal(t, conf.Profiling.Port, server.DefaultProfilingPort)
		assert.Equal(t, conf.Backend.SecretKey, server.DefaultSecretKey)

		tokenDuration, err := time.ParseDuration(conf.Backend.TokenDuration)
		assert.NoError(t, err)
		assert.Equal(t, tokenDuration, server.DefaultTokenDuration)

		connTimeout, err := time.ParseDuration(conf.Mongo.ConnectionTimeout)
		assert.NoError(t, err)
		assert.Equal(t, connTimeout, server.DefaultMongoConnectionTimeout)
		assert.Equal(t, conf.Mongo.ConnectionURI, server.DefaultMongoConnectionURI)
		assert.Equal(t, conf.Mongo.Database, server.DefaultMongoDatabase)

		pingTimeout, err := time.ParseDuration(conf.Mongo.PingTimeout)
		assert.NoError(t, err)
		assert.Equal(t, pingTimeout, server.DefaultMongoPingTimeout)

		assert.NoError(t, conf.Validate())
	})

	t.Run("defaults fill missing sections test", func(t *testing.T) {
		conf := server.NewConfig()
		assert.NoError(t, conf.Validate())
		assert.Nil(t, conf.Mongo)
	})
}
