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

package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/server/auth"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database/memory"
	"github.com/taskhub-team/taskhub/server/backend/sync"
)

func setupServer(t *testing.T) *httptest.Server {
	db, err := memory.New()
	assert.NoError(t, err)

	be := &backend.Backend{
		Config:  &backend.Config{SecretKey: "test-key", TokenDuration: "1h"},
		DB:      db,
		Lockers: sync.New(),
	}

	s := NewServer(
		&Config{Port: 0},
		be,
		auth.NewTokenManager("test-key", time.Hour),
		nil,
	)

	ts := httptest.NewServer(s.echo)
	t.Cleanup(ts.Close)
	return ts
}

// request performs a JSON request against the test server and decodes the
// response body into a generic map.
func request(
	t *testing.T,
	ts *httptest.Server,
	method, path, token string,
	body map[string]interface{},
) (int, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Client().Do(req)
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, res.Body.Close())
	}()

	var decoded map[string]interface{}
	if res.StatusCode != http.StatusNoContent {
		var raw interface{}
		assert.NoError(t, json.NewDecoder(res.Body).Decode(&raw))
		if m, ok := raw.(map[string]interface{}); ok {
			decoded = m
		}
	}

	return res.StatusCode, decoded
}

func signUp(t *testing.T, ts *httptest.Server, handle string) (string, string) {
	status, body := request(t, ts, http.MethodPost, "/auth/signup", "", map[string]interface{}{
		"handle":   handle,
		"name":     handle,
		"password": "password123!",
	})
	assert.Equal(t, http.StatusCreated, status)

	token := body["token"].(string)
	userID := body["user"].(map[string]interface{})["id"].(string)
	return token, userID
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("signup then login test", func(t *testing.T) {
		ts := setupServer(t)

		_, _ = signUp(t, ts, "alice")

		status, body := request(t, ts, http.MethodPost, "/auth/login", "", map[string]interface{}{
			"handle":   "alice",
			"password": "password123!",
		})
		assert.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, body["token"])

		status, body = request(t, ts, http.MethodPost, "/auth/login", "", map[string]interface{}{
			"handle":   "alice",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "ErrMismatchedPassword", body["code"])
	})

	t.Run("invalid signup fields test", func(t *testing.T) {
		ts := setupServer(t)

		status, body := request(t, ts, http.MethodPost, "/auth/signup", "", map[string]interface{}{
			"handle":   "Not A Slug",
			"name":     "Alice",
			"password": "password123!",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "ErrInvalidFields", body["code"])
		assert.NotEmpty(t, body["violations"])
	})

	t.Run("missing token test", func(t *testing.T) {
		ts := setupServer(t)

		status, body := request(t, ts, http.MethodGet, "/projects", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "ErrInvalidToken", body["code"])
	})
}

func TestProjectCollaborationFlow(t *testing.T) {
	ts := setupServer(t)

	ownerToken, _ := signUp(t, ts, "owner")
	joinerToken, joinerID := signUp(t, ts, "joiner")

	// 01. the owner creates a project and is its sole owner.
	status, body := request(t, ts, http.MethodPost, "/projects", ownerToken, map[string]interface{}{
		"name": "launch plan",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "owner", body["role"])
	projectID := body["project_id"].(string)

	// 02. the joiner sees no projects yet.
	status, _ = request(t, ts, http.MethodGet, "/projects", joinerToken, nil)
	assert.Equal(t, http.StatusOK, status)

	// 03. the owner issues an invite code.
	status, body = request(t, ts, http.MethodPost, "/projects/"+projectID+"/invites", ownerToken, nil)
	assert.Equal(t, http.StatusCreated, status)
	code := body["invite_code"].(string)

	// 04. an unknown code is rejected.
	status, body = request(t, ts, http.MethodPost, "/projects/join", joinerToken, map[string]interface{}{
		"invite_code": "no-such-code",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ErrInviteNotFound", body["code"])

	// 05. the joiner redeems the code and becomes a participant.
	status, body = request(t, ts, http.MethodPost, "/projects/join", joinerToken, map[string]interface{}{
		"invite_code": code,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "participant", body["role"])

	// 06. redeeming the same code again conflicts.
	status, body = request(t, ts, http.MethodPost, "/projects/join", joinerToken, map[string]interface{}{
		"invite_code": code,
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ErrMemberAlreadyExists", body["code"])

	// 07. a participant cannot create tasks.
	due := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	status, body = request(t, ts, http.MethodPost, "/projects/"+projectID+"/tasks", joinerToken, map[string]interface{}{
		"name":        "forbidden",
		"description": "should not exist",
		"assignee":    joinerID,
		"due_date":    due,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "ErrNotPrivileged", body["code"])

	// 08. the owner creates a task assigned to the joiner.
	status, body = request(t, ts, http.MethodPost, "/projects/"+projectID+"/tasks", ownerToken, map[string]interface{}{
		"name":        "prepare slides",
		"description": "for the kickoff",
		"assignee":    joinerID,
		"due_date":    due,
	})
	assert.Equal(t, http.StatusCreated, status)
	taskID := body["id"].(string)

	// 09. the joiner sees the denormalized project view.
	status, body = request(t, ts, http.MethodGet, "/projects/"+projectID, joinerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "launch plan", body["name"])
	assert.Equal(t, "participant", body["role"])
	assert.Len(t, body["users"], 2)
	taskViews := body["tasks"].([]interface{})
	assert.Len(t, taskViews, 1)
	responsible := taskViews[0].(map[string]interface{})["responsible_users"].([]interface{})
	assert.Equal(t, []interface{}{"joiner"}, responsible)

	// 10. the owner promotes the joiner; the joiner can now mutate tasks.
	status, _ = request(
		t, ts, http.MethodPatch,
		fmt.Sprintf("/projects/%s/members/%s/role", projectID, joinerID),
		ownerToken,
		map[string]interface{}{"role": "manager"},
	)
	assert.Equal(t, http.StatusNoContent, status)

	status, body = request(
		t, ts, http.MethodPatch,
		fmt.Sprintf("/projects/%s/tasks/%s/status", projectID, taskID),
		joinerToken,
		map[string]interface{}{"completed": true},
	)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["completed"])

	// 11. the owner cannot leave but the promoted member can.
	status, body = request(t, ts, http.MethodDelete, "/projects/"+projectID+"/leave", ownerToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ErrOwnerCannotLeave", body["code"])

	status, _ = request(t, ts, http.MethodDelete, "/projects/"+projectID+"/leave", joinerToken, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, body = request(t, ts, http.MethodGet, "/projects/"+projectID, joinerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ErrMembershipNotFound", body["code"])
}
