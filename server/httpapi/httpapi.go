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

package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/taskhub-team/taskhub/internal/version"
	"github.com/taskhub-team/taskhub/server/auth"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/logging"
	"github.com/taskhub-team/taskhub/server/profiling/prometheus"
)

// Server is the HTTP API server of TaskHub.
type Server struct {
	conf         *Config
	backend      *backend.Backend
	tokenManager *auth.TokenManager
	metrics      *prometheus.Metrics
	echo         *echo.Echo
}

// NewServer creates an instance of Server.
func NewServer(
	conf *Config,
	be *backend.Backend,
	tokenManager *auth.TokenManager,
	metrics *prometheus.Metrics,
) *Server {
	s := &Server{
		conf:         conf,
		backend:      be,
		tokenManager: tokenManager,
		metrics:      metrics,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(s.loggingMiddleware)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/healthz", s.handleHealth)

	e.POST("/auth/signup", s.handleSignUp)
	e.POST("/auth/login", s.handleLogIn)

	user := e.Group("/user")
	user.Use(s.authMiddleware)
	user.GET("", s.handleProfile)

	projects := e.Group("/projects")
	projects.Use(s.authMiddleware)

	projects.GET("", s.handleListProjects)
	projects.POST("", s.handleCreateProject)
	projects.POST("/join", s.handleJoinProject)
	projects.GET("/:projectId", s.handleGetProject)
	projects.PATCH("/:projectId/name", s.handleChangeProjectName)
	projects.PATCH("/:projectId/description", s.handleChangeProjectDescription)
	projects.DELETE("/:projectId/leave", s.handleLeaveProject)

	projects.POST("/:projectId/invites", s.handleNewInvite)
	projects.DELETE("/:projectId/invites", s.handleRevokeInvites)

	projects.PATCH("/:projectId/members/:userId/role", s.handleChangeMemberRole)
	projects.DELETE("/:projectId/members/:userId", s.handleKickMember)

	projects.GET("/:projectId/tasks", s.handleListTasks)
	projects.POST("/:projectId/tasks", s.handleCreateTask)
	projects.GET("/:projectId/tasks/:taskId", s.handleGetTask)
	projects.PATCH("/:projectId/tasks/:taskId/status", s.handleChangeTaskStatus)
	projects.PATCH("/:projectId/tasks/:taskId/assignee", s.handleChangeTaskAssignee)
	projects.PATCH("/:projectId/tasks/:taskId/due-date", s.handleChangeTaskDueDate)
	projects.DELETE("/:projectId/tasks/:taskId", s.handleDeleteTask)

	s.echo = e
}

// Start starts the server. It returns once the listener is accepting
// connections; serving continues in the background.
func (s *Server) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.conf.Port)
		logging.DefaultLogger().Infof("serving API on %d", s.conf.Port)
		if err := s.echo.Start(addr); err != http.ErrServerClosed {
			logging.DefaultLogger().Errorf("HTTP server Start: %v", err)
		}
	}()
	return nil
}

// Shutdown shuts down the server.
func (s *Server) Shutdown(graceful bool) {
	if graceful {
		if err := s.echo.Shutdown(context.Background()); err != nil {
			logging.DefaultLogger().Error("HTTP server Shutdown: %v", err)
		}
		return
	}

	if err := s.echo.Close(); err != nil {
		logging.DefaultLogger().Error("HTTP server close: %v", err)
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}
