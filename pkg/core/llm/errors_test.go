package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"nil", nil, FailureNone},
		{"empty response", fmt.Errorf("wrap: %w", ErrEmptyResponse), FailureMalformed},
		{"deadline", fmt.Errorf("gemini generation failed: %w", context.DeadlineExceeded), FailureNetwork},
		{"genai 401", fmt.Errorf("wrap: %w", genai.APIError{Code: 401, Status: "UNAUTHENTICATED"}), FailureAuth},
		{"genai bad key", genai.APIError{Code: 400, Status: "INVALID_ARGUMENT", Message: "API key not valid. Please pass a valid API key."}, FailureAuth},
		{"genai 429", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"}, FailureQuota},
		{"genai 500", genai.APIError{Code: 500, Status: "INTERNAL"}, FailureUnknown},
		{"googleapi 403", &googleapi.Error{Code: 403}, FailureAuth},
		{"net", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, FailureNetwork},
		{"grpc text", errors.New("rpc error: code = ResourceExhausted desc = Quota exceeded"), FailureQuota},
		{"other", errors.New("boom"), FailureUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyError(tc.err))
		})
	}
}
