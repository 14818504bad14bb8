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

// DefaultDescription is the placeholder used when a project is created
// without a description.
const DefaultDescription = "Wow... No description?..."

// ProjectInfo is the project aggregate: the project document together with
// its embedded memberships, tasks and invite codes. It is loaded, mutated
// and persisted only as a unit.
type ProjectInfo struct {
	// ID is the unique ID of the project.
	ID types.ID `bson:"_id"`

	// Name is the name of the project.
	Name string `bson:"name"`

	// Description is the description of the project.
	Description string `bson:"description"`

	// Members is the set of memberships. UserIDs are unique within the set.
	Members []MembershipInfo `bson:"members"`

	// Tasks is the ordered collection of tasks of the project.
	Tasks []TaskInfo `bson:"tasks"`

	// InviteCodes is the set of active invite codes of the project.
	InviteCodes []string `bson:"invite_codes"`

	// CreatedAt is the time when the project was created.
	CreatedAt time.Time `bson:"created_at"`
}

// NewProjectInfo creates a new ProjectInfo with the creator as its sole,
// owner-role membership.
func NewProjectInfo(name, description string, owner types.ID) *ProjectInfo {
	if description == "" {
		description = DefaultDescription
	}

	return &ProjectInfo{
		Name:        name,
		Description: description,
		Members:     []MembershipInfo{{UserID: owner, Role: Owner}},
		Tasks:       []TaskInfo{},
		InviteCodes: []string{},
		CreatedAt:   time.Now(),
	}
}

// DeepCopy returns a deep copy of the ProjectInfo.
func (i *ProjectInfo) DeepCopy() *ProjectInfo {
	if i == nil {
		return nil
	}

	members := make([]MembershipInfo, len(i.Members))
	copy(members, i.Members)

	tasks := make([]TaskInfo, len(i.Tasks))
	for idx := range i.Tasks {
		tasks[idx] = *i.Tasks[idx].DeepCopy()
	}

	codes := make([]string, len(i.InviteCodes))
	copy(codes, i.InviteCodes)

	return &ProjectInfo{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Members:     members,
		Tasks:       tasks,
		InviteCodes: codes,
		CreatedAt:   i.CreatedAt,
	}
}

// FindMembership returns the membership of the given user, or nil when the
// user is not a member.
func (i *ProjectInfo) FindMembership(userID types.ID) *MembershipInfo {
	for idx := range i.Members {
		if i.Members[idx].UserID == userID {
			return &i.Members[idx]
		}
	}
	return nil
}

// AddMembership inserts a membership for the given user. It returns
// ErrMemberAlreadyExists when the user already holds one.
func (i *ProjectInfo) AddMembership(userID types.ID, role MemberRole) error {
	if i.FindMembership(userID) != nil {
		return ErrMemberAlreadyExists
	}

	i.Members = append(i.Members, MembershipInfo{UserID: userID, Role: role})
	return nil
}

// RemoveMembership removes the membership of the given user. Removing a
// non-member is a no-op.
func (i *ProjectInfo) RemoveMembership(userID types.ID) {
	members := i.Members[:0]
	for _, m := range i.Members {
		if m.UserID != userID {
			members = append(members, m)
		}
	}
	i.Members = members
}

// CountOwners returns the number of owner-role memberships.
func (i *ProjectInfo) CountOwners() int {
	count := 0
	for _, m := range i.Members {
		if m.Role == Owner {
			count++
		}
	}
	return count
}

// FindTask returns the task with the given ID, or nil when absent.
func (i *ProjectInfo) FindTask(taskID types.ID) *TaskInfo {
	for idx := range i.Tasks {
		if i.Tasks[idx].ID == taskID {
			return &i.Tasks[idx]
		}
	}
	return nil
}

// AddTask appends the given task to the project's task list.
func (i *ProjectInfo) AddTask(task *TaskInfo) {
	i.Tasks = append(i.Tasks, *task)
}

// RemoveTask removes the task with the given ID. Removing an absent task is
// a no-op.
func (i *ProjectInfo) RemoveTask(taskID types.ID) {
	tasks := i.Tasks[:0]
	for _, t := range i.Tasks {
		if t.ID != taskID {
			tasks = append(tasks, t)
		}
	}
	i.Tasks = tasks
}

// HasInviteCode returns true if the code is in the project's invite-code set.
func (i *ProjectInfo) HasInviteCode(code string) bool {
	for _, c := range i.InviteCodes {
		if c == code {
			return true
		}
	}
	return false
}

// AddInviteCode appends the code to the project's invite-code set.
func (i *ProjectInfo) AddInviteCode(code string) {
	i.InviteCodes = append(i.InviteCodes, code)
}

// ClearInviteCodes removes every invite code of the project.
func (i *ProjectInfo) ClearInviteCodes() {
	i.InviteCodes = []string{}
}

// ToSummary converts the ProjectInfo to a ProjectSummary carrying the given
// role.
func (i *ProjectInfo) ToSummary(role MemberRole) *types.ProjectSummary {
	return &types.ProjectSummary{
		ID:   i.ID,
		Name: i.Name,
		Role: role.String(),
	}
}
