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
	"fmt"

	"github.com/taskhub-team/taskhub/api/types"
)

const (
	// Owner is the owner role of the project.
	Owner MemberRole = "owner"
	// Manager is the manager role of the project.
	Manager MemberRole = "manager"
	// Participant is the participant role of the project.
	Participant MemberRole = "participant"
	// Viewer is the viewer role of the project.
	Viewer MemberRole = "viewer"
)

// MemberRole represents a role of a project member. It is used only in
// internal layers (business/db) to avoid persisting invalid values.
type MemberRole string

// String returns the string representation of the role.
func (r MemberRole) String() string {
	return string(r)
}

// Validate validates the given member role.
func (r MemberRole) Validate() error {
	switch r {
	case Owner, Manager, Participant, Viewer:
		return nil
	default:
		return fmt.Errorf("%s: %w", r, ErrInvalidMemberRole)
	}
}

// IsPrivileged returns true iff the role may perform mutating project and
// task operations. Only owner and manager are privileged.
func (r MemberRole) IsPrivileged() bool {
	return r == Owner || r == Manager
}

// NewMemberRole parses and validates a role string into MemberRole.
func NewMemberRole(role string) (MemberRole, error) {
	r := MemberRole(role)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// MembershipInfo is a pair of a user and the role the user holds inside a
// project. It lives embedded in its project document.
type MembershipInfo struct {
	// UserID is the ID of the user.
	UserID types.ID `bson:"user_id"`

	// Role is the role of the user in the project.
	Role MemberRole `bson:"role"`
}

// DeepCopy returns a deep copy of the MembershipInfo.
func (i *MembershipInfo) DeepCopy() *MembershipInfo {
	if i == nil {
		return nil
	}

	return &MembershipInfo{
		UserID: i.UserID,
		Role:   i.Role,
	}
}
