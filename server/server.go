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

// Package server provides the TaskHub server which is the main entry point of
// the TaskHub system. The server is responsible for starting the HTTP API
// server and the profiling server.
package server

import (
	gosync "sync"

	"github.com/taskhub-team/taskhub/server/auth"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/httpapi"
	"github.com/taskhub-team/taskhub/server/profiling"
	"github.com/taskhub-team/taskhub/server/profiling/prometheus"
)

// TaskHub is a server of TaskHub. The server receives API requests from
// clients, authorizes them against project memberships and stores projects
// and tasks in the repository.
type TaskHub struct {
	lock gosync.Mutex

	conf            *Config
	backend         *backend.Backend
	apiServer       *httpapi.Server
	profilingServer *profiling.Server

	shutdown   bool
	shutdownCh chan struct{}
}

// New creates a new instance of TaskHub.
func New(conf *Config) (*TaskHub, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	metrics, err := prometheus.NewMetrics()
	if err != nil {
		return nil, err
	}

	be, err := backend.New(conf.Backend, conf.Mongo)
	if err != nil {
		return nil, err
	}

	tokenManager := auth.NewTokenManager(
		conf.Backend.SecretKey,
		conf.Backend.ParseTokenDuration(),
	)

	apiServer := httpapi.NewServer(conf.API, be, tokenManager, metrics)

	var profilingServer *profiling.Server
	if conf.Profiling != nil {
		profilingServer = profiling.NewServer(conf.Profiling, metrics)
	}

	return &TaskHub{
		conf:            conf,
		backend:         be,
		apiServer:       apiServer,
		profilingServer: profilingServer,
		shutdownCh:      make(chan struct{}),
	}, nil
}

// Start starts the server by opening the API port.
func (r *TaskHub) Start() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.profilingServer != nil {
		if err := r.profilingServer.Start(); err != nil {
			return err
		}
	}

	return r.apiServer.Start()
}

// Shutdown shuts down this TaskHub server.
func (r *TaskHub) Shutdown(graceful bool) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.shutdown {
		return nil
	}

	r.apiServer.Shutdown(graceful)
	if r.profilingServer != nil {
		r.profilingServer.Shutdown(graceful)
	}

	if err := r.backend.Shutdown(); err != nil {
		return err
	}

	close(r.shutdownCh)
	r.shutdown = true
	return nil
}

// ShutdownCh returns the shutdown channel.
func (r *TaskHub) ShutdownCh() <-chan struct{} {
	return r.shutdownCh
}

// APIAddr returns the address of the API.
func (r *TaskHub) APIAddr() string {
	return r.conf.APIAddr()
}
