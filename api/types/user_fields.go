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

// SignUpFields is a set of fields that use to sign up to the service.
type SignUpFields struct {
	// Handle is the login handle of the user.
	Handle *string `json:"handle" validate:"required,min=2,max=30,slug"`

	// Name is the display name of the user.
	Name *string `json:"name" validate:"required,min=1,max=50"`

	// Password is the password of the user.
	Password *string `json:"password" validate:"required,min=8,max=30,alpha_num_special"`
}

// Validate validates the SignUpFields.
func (i *SignUpFields) Validate() error {
	return validation.ValidateStruct(i)
}

// LogInFields is a set of fields that use to log in to the service.
type LogInFields struct {
	// Handle is the login handle of the user.
	Handle *string `json:"handle" validate:"required"`

	// Password is the password of the user.
	Password *string `json:"password" validate:"required"`
}

// Validate validates the LogInFields.
func (i *LogInFields) Validate() error {
	return validation.ValidateStruct(i)
}
