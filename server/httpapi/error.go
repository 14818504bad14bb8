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
	goerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub-team/taskhub/internal/validation"
	"github.com/taskhub-team/taskhub/pkg/errors"
	"github.com/taskhub-team/taskhub/server/logging"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`

	// Violations carries per-field messages for validation failures.
	Violations []fieldViolation `json:"violations,omitempty"`
}

type fieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// httpStatusOf maps the server's status codes to HTTP status codes.
func httpStatusOf(code errors.StatusCode) int {
	switch code {
	case errors.ErrCodeInvalidArgument:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAlreadyExists:
		return http.StatusConflict
	case errors.ErrCodePermissionDenied:
		return http.StatusForbidden
	case errors.ErrCodeFailedPrecondition:
		return http.StatusBadRequest
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError converts the given error to a JSON error response. Validation
// errors become bad requests with per-field violations; status errors map
// through the code table; everything else is an internal error.
func (s *Server) writeError(c echo.Context, err error) error {
	var structError *validation.StructError
	if goerrors.As(err, &structError) {
		violations := make([]fieldViolation, 0, len(structError.Violations))
		for _, v := range structError.Violations {
			violations = append(violations, fieldViolation{
				Field:       v.Field,
				Description: v.Description,
			})
		}

		if s.metrics != nil {
			s.metrics.AddError("ErrInvalidFields")
		}
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:       "ErrInvalidFields",
			Message:    structError.Error(),
			Violations: violations,
		})
	}

	if s.metrics != nil {
		s.metrics.AddError(errors.CodeOf(err))
	}

	status := errors.StatusOf(err)
	httpStatus := httpStatusOf(status)
	if httpStatus == http.StatusInternalServerError {
		logging.From(c.Request().Context()).Error(err)
		return c.JSON(httpStatus, errorResponse{
			Code:    errors.CodeOf(err),
			Message: "internal error",
		})
	}

	return c.JSON(httpStatus, errorResponse{
		Code:    errors.CodeOf(err),
		Message: err.Error(),
	})
}
