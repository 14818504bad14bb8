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

package database

import (
	"time"

	"github.com/taskhub-team/taskhub/api/types"
)

// TaskInfo is a task embedded in its project document. It has no lifecycle
// outside the project aggregate.
type TaskInfo struct {
	// ID is the ID of the task, unique within the project.
	ID types.ID `bson:"_id"`

	// Name is the name of the task.
	Name string `bson:"name"`

	// Description is the description of the task.
	Description string `bson:"description"`

	// DueDate is the due date of the task.
	DueDate time.Time `bson:"due_date"`

	// Completed indicates whether the task is done.
	Completed bool `bson:"completed"`

	// ResponsibleUsers is the non-empty set of responsible user IDs. The IDs
	// are not checked against the membership list; a task may keep
	// referencing a user who left the project.
	ResponsibleUsers []types.ID `bson:"responsible_users"`
}

// NewTaskInfo creates a new TaskInfo with a fresh ID and a single
// responsible user.
func NewTaskInfo(name, description string, assignee types.ID, dueDate time.Time) *TaskInfo {
	return &TaskInfo{
		ID:               NewID(),
		Name:             name,
		Description:      description,
		DueDate:          dueDate,
		Completed:        false,
		ResponsibleUsers: []types.ID{assignee},
	}
}

// DeepCopy returns a deep copy of the TaskInfo.
func (i *TaskInfo) DeepCopy() *TaskInfo {
	if i == nil {
		return nil
	}

	responsible := make([]types.ID, len(i.ResponsibleUsers))
	copy(responsible, i.ResponsibleUsers)

	return &TaskInfo{
		ID:               i.ID,
		Name:             i.Name,
		Description:      i.Description,
		DueDate:          i.DueDate,
		Completed:        i.Completed,
		ResponsibleUsers: responsible,
	}
}

// ToTask converts the TaskInfo to a Task.
func (i *TaskInfo) ToTask() *types.Task {
	responsible := make([]types.ID, len(i.ResponsibleUsers))
	copy(responsible, i.ResponsibleUsers)

	return &types.Task{
		ID:               i.ID,
		Name:             i.Name,
		Description:      i.Description,
		DueDate:          i.DueDate,
		Completed:        i.Completed,
		ResponsibleUsers: responsible,
	}
}
