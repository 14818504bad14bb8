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

// ProjectSummary is a compact listing entry for a project, attached with the
// requesting user's role in it.
type ProjectSummary struct {
	// ID is the unique ID of the project.
	ID ID `json:"project_id"`

	// Name is the name of the project.
	Name string `json:"project_name"`

	// Role is the role of the requesting user in the project.
	Role string `json:"role"`
}

// ProjectView is the denormalized view of a project for a member: memberships
// and task assignees are resolved to display names.
type ProjectView struct {
	// Name is the name of the project.
	Name string `json:"name"`

	// Description is the description of the project.
	Description string `json:"description"`

	// CreatedAt is the time when the project was created.
	CreatedAt time.Time `json:"created_at"`

	// Role is the role of the requesting user in the project.
	Role string `json:"role"`

	// Members are the members of the project. A membership whose user can no
	// longer be resolved is dropped from the view.
	Members []*Member `json:"users"`

	// Tasks are the tasks of the project.
	Tasks []*TaskView `json:"tasks"`
}
