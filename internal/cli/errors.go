package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bjornmorten/stoat-wh/internal/httpclient"
	"github.com/bjornmorten/stoat-wh/internal/webhook"
)

// Process exit codes. Scripts branch on these, so each failure category
// has a fixed code; API errors propagate the HTTP status code instead.
const (
	ExitSuccess    = 0
	ExitUsage      = 1
	ExitNetwork    = 2
	ExitParse      = 5
	ExitValidation = 6
	ExitInterrupt  = 130
)

// ExitError couples the user-facing error line with the process exit
// code. An empty message exits silently.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Exitf builds an ExitError with a formatted message.
func Exitf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// mapError converts domain errors into ExitErrors carrying the
// documented exit codes and output lines.
func mapError(err error, debug bool) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	if errors.Is(err, context.Canceled) {
		return &ExitError{Code: ExitInterrupt}
	}

	var netErr *httpclient.NetworkError
	if errors.As(err, &netErr) {
		return Exitf(ExitNetwork, "Network error: %v", err)
	}

	var apiErr *webhook.APIError
	if errors.As(err, &apiErr) {
		if debug && apiErr.Decoded {
			return Exitf(apiErr.StatusCode, "%s", webhook.PrettyJSON(apiErr.Raw))
		}
		if !apiErr.Decoded {
			return Exitf(apiErr.StatusCode, "%s", apiErr.FriendlyMessage())
		}
		return Exitf(apiErr.StatusCode, "Error: %s", apiErr.FriendlyMessage())
	}

	return Exitf(ExitUsage, "Error: %v", err)
}
