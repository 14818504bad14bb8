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

// Member is a member of a project with the user's display name resolved.
type Member struct {
	// UserID is the ID of the user.
	UserID ID `json:"user_id"`

	// Role is the role of the user in the project.
	Role string `json:"role"`

	// Name is the display name of the user.
	Name string `json:"name"`
}
