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
	"github.com/taskhub-team/taskhub/server/tasks"
)

func (s *Server) handleListTasks(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	list, err := tasks.List(ctx, s.backend, projectID, callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}

	fields := &types.CreateTaskFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	task, err := tasks.Create(
		ctx,
		s.backend,
		projectID,
		callerID(c),
		*fields.Name,
		*fields.Description,
		types.ID(*fields.Assignee),
		*fields.DueDate,
	)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (s *Server) handleGetTask(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	task, err := tasks.Get(ctx, s.backend, projectID, callerID(c), taskID)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleChangeTaskStatus(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return s.writeError(c, err)
	}

	fields := &types.UpdateTaskStatusFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	task, err := tasks.SetCompleted(ctx, s.backend, projectID, callerID(c), taskID, *fields.Completed)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleChangeTaskAssignee(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return s.writeError(c, err)
	}

	fields := &types.UpdateTaskAssigneeFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	task, err := tasks.SetAssignee(ctx, s.backend, projectID, callerID(c), taskID, types.ID(*fields.Assignee))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleChangeTaskDueDate(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return s.writeError(c, err)
	}

	fields := &types.UpdateTaskDueDateFields{}
	if err := c.Bind(fields); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := fields.Validate(); err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	task, err := tasks.SetDueDate(ctx, s.backend, projectID, callerID(c), taskID, *fields.DueDate)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return s.writeError(c, err)
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err := tasks.Delete(ctx, s.backend, projectID, callerID(c), taskID); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
