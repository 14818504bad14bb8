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
	"github.com/taskhub-team/taskhub/pkg/errors"
	"github.com/taskhub-team/taskhub/server/invites"
	"github.com/taskhub-team/taskhub/server/members"
	"github.com/taskhub-team/taskhub/server/projects"
)

// pathID extracts and validates an ObjectID-shaped path parameter.
func pathID(c echo.Context, name string) (types.ID, error) {
	id := types.ID(c.Param(name))
	if err := id.Validate(); err != nil {
		return "", errors.InvalidArgument(err.Error()).WithCode("ErrInvalidID")
	}

	return id, nil
}

func (s *Server) handleListProjects(c echo.Context) error {
	ctx := c.Request().Context()
	summaries, err := projects.ListJoined(ctx, s.backend, callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}

func (s *Server) handleCreateProject(c echo.Context) error {
	fields := &types.CreateProjectFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	description := ""
	if fields.Description != nil {
		description = *fields.Description
	}

	ctx := c.Request().Context()
	summary, err := projects.Create(ctx, s.backend, *fields.Name, description, callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, summary)
}

func (s *Server) handleGetProject(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	view, err := projects.GetInfo(ctx, s.backend, projectID, callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) handleChangeProjectName(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	fields := &types.UpdateProjectNameFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err := projects.Rename(ctx, s.backend, projectID, callerID(c), *fields.Name); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleChangeProjectDescription(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	fields := &types.UpdateProjectDescriptionFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err := projects.Redescribe(ctx, s.backend, projectID, callerID(c), *fields.Description); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleJoinProject(c echo.Context) error {
	fields := &types.JoinProjectFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	summary, err := invites.Redeem(ctx, s.backend, callerID(c), *fields.InviteCode)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (s *Server) handleLeaveProject(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err := members.Leave(ctx, s.backend, projectID, callerID(c)); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleNewInvite(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	code, err := invites.Issue(ctx, s.backend, projectID, callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"invite_code": code})
}

func (s *Server) handleRevokeInvites(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err := invites.RevokeAll(ctx, s.backend, projectID, callerID(c)); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleChangeMemberRole(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}
	targetID, err := pathID(c, "userId")
	if err != nil {
		return s.writeError(c, err)
	}

	fields := &types.UpdateMemberRoleFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err := members.ChangeRole(ctx, s.backend, projectID, callerID(c), targetID, *fields.Role); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleKickMember(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}
	targetID, err := pathID(c, "userId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err := members.Kick(ctx, s.backend, projectID, callerID(c), targetID); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
