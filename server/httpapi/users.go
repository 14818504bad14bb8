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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/users"
)

type authResponse struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

func (s *Server) handleSignUp(c echo.Context) error {
	fields := &types.SignUpFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	user, err := users.SignUp(ctx, s.backend, *fields.Handle, *fields.Name, *fields.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	token, err := s.tokenManager.Generate(user.ID, user.Handle)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) handleLogIn(c echo.Context) error {
	fields := &types.LogInFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	user, err := users.LogIn(ctx, s.backend, *fields.Handle, *fields.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	token, err := s.tokenManager.Generate(user.ID, user.Handle)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

func (s *Server) handleProfile(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := users.GetUser(ctx, s.backend, callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
