package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// FailureKind is a coarse classification of a generation error. It is recorded
// and logged; users see the same message whatever the kind.
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureAuth      FailureKind = "auth"
	FailureQuota     FailureKind = "quota"
	FailureNetwork   FailureKind = "network"
	FailureMalformed FailureKind = "malformed"
	FailureBusy      FailureKind = "busy"
	FailureInvalid   FailureKind = "invalid_selection"
	FailureUnknown   FailureKind = "unknown"
)

// ClassifyError maps an error from either Gemini SDK onto a FailureKind.
func ClassifyError(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	if errors.Is(err, ErrEmptyResponse) {
		return FailureMalformed
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureNetwork
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.Code, apiErr.Status, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return classifyStatus(apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message)
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return classifyStatus(gErr.Code, "", gErr.Message)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureNetwork
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return FailureMalformed
	}

	// gRPC errors from the older SDK only carry their code in the text.
	return classifyStatus(0, "", err.Error())
}

func classifyStatus(code int, status, message string) FailureKind {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return FailureAuth
	case http.StatusTooManyRequests:
		return FailureQuota
	}

	text := strings.ToLower(status + " " + message)
	switch {
	case strings.Contains(text, "api key not valid"),
		strings.Contains(text, "api_key_invalid"),
		strings.Contains(text, "unauthenticated"),
		strings.Contains(text, "permission_denied"),
		strings.Contains(text, "permissiondenied"):
		return FailureAuth
	case strings.Contains(text, "resource_exhausted"),
		strings.Contains(text, "resourceexhausted"),
		strings.Contains(text, "quota"):
		return FailureQuota
	case strings.Contains(text, "unavailable"),
		strings.Contains(text, "connection refused"),
		strings.Contains(text, "no such host"):
		return FailureNetwork
	}
	return FailureUnknown
}
