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

import "time"

// Task is a task inside a project.
type Task struct {
	// ID is the ID of the task, unique within its project.
	ID ID `json:"id"`

	// Name is the name of the task.
	Name string `json:"name"`

	// Description is the description of the task.
	Description string `json:"description"`

	// DueDate is the due date of the task.
	DueDate time.Time `json:"due_date"`

	// Completed indicates whether the task is done.
	Completed bool `json:"completed"`

	// ResponsibleUsers is the set of users responsible for the task. The IDs
	// are not required to reference current project members.
	ResponsibleUsers []ID `json:"responsible_users"`
}

// TaskView is a task with its responsible users resolved to display names.
// A responsible user that can no longer be resolved surfaces as null instead
// of dropping the task.
type TaskView struct {
	ID               ID        `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	DueDate          time.Time `json:"due_date"`
	Completed        bool      `json:"completed"`
	ResponsibleUsers []*string `json:"responsible_users"`
}
