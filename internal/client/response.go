package client

import (
	"bytes"
	"encoding/json"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
)

// The backend wraps most answers as {"success":true,"data":...}; a few older routes
// return the resource bare. Both shapes are accepted.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
	Message string          `json:"message"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeData(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Success != nil {
			if !*env.Success {
				return appErrors.BadRequestError(errorMessage(trimmed, "Request was rejected"))
			}

			if len(env.Data) == 0 || string(env.Data) == "null" {
				return nil
			}

			trimmed = env.Data
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return appErrors.ThirdPartyError("Unexpected response from server").WithError(err)
	}

	return nil
}

// errorMessage pulls a human readable message from an error body, falling back
// to def.
func errorMessage(body []byte, def string) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return def
	}

	if env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}

	if env.Message != "" {
		return env.Message
	}

	return def
}

func statusError(status int, body []byte) error {
	message := errorMessage(body, http.StatusText(status))

	var appErr *appErrors.AppError

	switch {
	case status == http.StatusBadRequest:
		appErr = appErrors.BadRequestError(message)
	case status == http.StatusForbidden:
		appErr = appErrors.ForbiddenError(message)
	case status == http.StatusNotFound:
		appErr = appErrors.NotFoundError(message)
	case status == http.StatusUnprocessableEntity:
		appErr = appErrors.ValidationError(message)
	case status == http.StatusTooManyRequests:
		appErr = appErrors.TooManyRequestsError(message)
	case status >= http.StatusInternalServerError:
		appErr = appErrors.ThirdPartyError(message)
	default:
		appErr = appErrors.BadRequestError(message)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil && env.Error.Code != "" {
		appErr.WithDetail(env.Error.Code)
	}

	return appErr.WithStatus(status)
}
