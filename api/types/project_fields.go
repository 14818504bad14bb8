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
	"github.com/taskhub-team/taskhub/internal/validation"
)

// CreateProjectFields is a set of fields that use to create a project.
type CreateProjectFields struct {
	// Name is the name of the project.
	Name *string `json:"name" validate:"required,min=1,max=100"`

	// Description is the description of the project. When omitted the server
	// falls back to a placeholder.
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Validate validates the CreateProjectFields.
func (i *CreateProjectFields) Validate() error {
	return validation.ValidateStruct(i)
}

// UpdateProjectNameFields is a set of fields that use to rename a project.
type UpdateProjectNameFields struct {
	// Name is the new name of the project.
	Name *string `json:"name" validate:"required,min=1,max=100"`
}

// Validate validates the UpdateProjectNameFields.
func (i *UpdateProjectNameFields) Validate() error {
	return validation.ValidateStruct(i)
}

// UpdateProjectDescriptionFields is a set of fields that use to change the
// description of a project.
type UpdateProjectDescriptionFields struct {
	// Description is the new description of the project.
	Description *string `json:"description" validate:"required,max=500"`
}

// Validate validates the UpdateProjectDescriptionFields.
func (i *UpdateProjectDescriptionFields) Validate() error {
	return validation.ValidateStruct(i)
}

// JoinProjectFields is a set of fields that use to redeem an invite code.
type JoinProjectFields struct {
	// InviteCode is the invite code to redeem.
	InviteCode *string `json:"invite_code" validate:"required,min=1"`
}

// Validate validates the JoinProjectFields.
func (i *JoinProjectFields) Validate() error {
	return validation.ValidateStruct(i)
}

// UpdateMemberRoleFields is a set of fields that use to change the role of a
// project member.
type UpdateMemberRoleFields struct {
	// Role is the new role of the member.
	Role *string `json:"role" validate:"required,oneof=owner manager participant viewer"`
}

// Validate validates the UpdateMemberRoleFields.
func (i *UpdateMemberRoleFields) Validate() error {
	return validation.ValidateStruct(i)
}
