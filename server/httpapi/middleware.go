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
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/auth"
	"github.com/taskhub-team/taskhub/server/logging"
)

const (
	bearerPrefix     = "Bearer "
	claimsContextKey = "user-claims"
)

// loggingMiddleware attaches a request-scoped logger to the context and logs
// the outcome of every request. Completed requests with error statuses are
// observed by the metrics as well.
func (s *Server) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		logger := logging.New("http")
		c.SetRequest(req.WithContext(logging.With(req.Context(), logger)))

		err := next(c)

		res := c.Response()
		elapsed := time.Since(start)
		if s.metrics != nil {
			s.metrics.ObserveRequest(req.Method, c.Path(), res.Status, elapsed)
		}

		logger.Infof(
			"%s %s %d %s",
			req.Method,
			req.RequestURI,
			res.Status,
			elapsed,
		)

		return err
	}
}

// authMiddleware resolves the caller from the bearer token and stores the
// verified claims in the request context. Missing or invalid tokens reject
// the request as unauthenticated.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return s.writeError(c, auth.ErrInvalidToken)
		}

		claims, err := s.tokenManager.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return s.writeError(c, err)
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// callerID returns the user ID of the authenticated caller. It must only be
// called on routes behind authMiddleware.
func callerID(c echo.Context) types.ID {
	return types.ID(c.Get(claimsContextKey).(*auth.UserClaims).UserID)
}
