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

package types

import (
	"time"

	"github.com/taskhub-team/taskhub/internal/validation"
)

// CreateTaskFields is a set of fields that use to create a task.
type CreateTaskFields struct {
	// Name is the name of the task.
	Name *string `json:"name" validate:"required,min=1,max=100"`

	// Description is the description of the task.
	Description *string `json:"description" validate:"required,max=500"`

	// Assignee is the ID of the initially responsible user.
	Assignee *string `json:"assignee" validate:"required,hexadecimal,len=24"`

	// DueDate is the due date of the task.
	DueDate *time.Time `json:"due_date" validate:"required"`
}

// Validate validates the CreateTaskFields.
func (i *CreateTaskFields) Validate() error {
	return validation.ValidateStruct(i)
}

// UpdateTaskStatusFields is a set of fields that use to complete or reopen a
// task.
type UpdateTaskStatusFields struct {
	// Completed is the new completion state of the task.
	Completed *bool `json:"completed" validate:"required"`
}

// Validate validates the UpdateTaskStatusFields.
func (i *UpdateTaskStatusFields) Validate() error {
	return validation.ValidateStruct(i)
}

// UpdateTaskAssigneeFields is a set of fields that use to re-assign a task.
type UpdateTaskAssigneeFields struct {
	// Assignee is the ID of the new responsible user.
	Assignee *string `json:"assignee" validate:"required,hexadecimal,len=24"`
}

// Validate validates the UpdateTaskAssigneeFields.
func (i *UpdateTaskAssigneeFields) Validate() error {
	return validation.ValidateStruct(i)
}

// UpdateTaskDueDateFields is a set of fields that use to change the due date
// of a task.
type UpdateTaskDueDateFields struct {
	// DueDate is the new due date of the task.
	DueDate *time.Time `json:"due_date" validate:"required"`
}

// Validate validates the UpdateTaskDueDateFields.
func (i *UpdateTaskDueDateFields) Validate() error {
	return validation.ValidateStruct(i)
}
