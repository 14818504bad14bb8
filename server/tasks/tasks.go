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

// Package tasks provides business logic for managing tasks inside a project.
// Reads require any membership; every mutation requires a privileged role.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/logging"
	"github.com/taskhub-team/taskhub/server/members"
)

// Create creates a new task with the given assignee as its single
// responsible user and appends it to the project.
func Create(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	name, description string,
	assignee types.ID,
	dueDate time.Time,
) (*types.Task, error) {
	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if _, err := members.GuardPrivileged(project, actorID); err != nil {
		return nil, err
	}

	task := database.NewTaskInfo(name, description, assignee, dueDate)
	project.AddTask(task)

	if err := be.DB.UpdateProjectInfo(ctx, project); err != nil {
		return nil, err
	}

	return task.ToTask(), nil
}

// Get returns the task with the given ID. The actor must be a member of the
// project; any role may read.
func Get(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	taskID types.ID,
) (*types.Task, error) {
	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if _, err := members.FindMembership(project, actorID); err != nil {
		return nil, err
	}

	task := project.FindTask(taskID)
	if task == nil {
		return nil, fmt.Errorf("%s in %s: %w", taskID, projectID, database.ErrTaskNotFound)
	}

	return task.ToTask(), nil
}

// List returns all tasks of the project. The actor must be a member.
func List(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
) ([]*types.Task, error) {
	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if _, err := members.FindMembership(project, actorID); err != nil {
		return nil, err
	}

	tasks := make([]*types.Task, len(project.Tasks))
	for i := range project.Tasks {
		tasks[i] = project.Tasks[i].ToTask()
	}

	return tasks, nil
}

// SetCompleted overwrites the completion flag of the task.
func SetCompleted(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	taskID types.ID,
	completed bool,
) (*types.Task, error) {
	return mutate(ctx, be, projectID, actorID, taskID, func(task *database.TaskInfo) {
		task.Completed = completed
	})
}

// SetAssignee replaces the responsible-user set of the task with the single
// given assignee.
func SetAssignee(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	taskID types.ID,
	assignee types.ID,
) (*types.Task, error) {
	return mutate(ctx, be, projectID, actorID, taskID, func(task *database.TaskInfo) {
		task.ResponsibleUsers = []types.ID{assignee}
	})
}

// SetDueDate overwrites the due date of the task.
func SetDueDate(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	taskID types.ID,
	dueDate time.Time,
) (*types.Task, error) {
	return mutate(ctx, be, projectID, actorID, taskID, func(task *database.TaskInfo) {
		task.DueDate = dueDate
	})
}

// Delete removes the task from the project. Deleting an absent task ID is a
// no-op.
func Delete(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	taskID types.ID,
) error {
	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return err
	}

	if _, err := members.GuardPrivileged(project, actorID); err != nil {
		return err
	}

	project.RemoveTask(taskID)
	return be.DB.UpdateProjectInfo(ctx, project)
}

// mutate runs the load-guard-mutate-save sequence shared by the task field
// mutations.
func mutate(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	taskID types.ID,
	apply func(task *database.TaskInfo),
) (*types.Task, error) {
	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if _, err := members.GuardPrivileged(project, actorID); err != nil {
		return nil, err
	}

	task := project.FindTask(taskID)
	if task == nil {
		return nil, fmt.Errorf("%s in %s: %w", taskID, projectID, database.ErrTaskNotFound)
	}

	apply(task)

	if err := be.DB.UpdateProjectInfo(ctx, project); err != nil {
		return nil, err
	}

	return task.ToTask(), nil
}

func unlock(ctx context.Context, locker sync.Locker) {
	if err := locker.Unlock(); err != nil {
		logging.From(ctx).Error(err)
	}
}
