package webhook

import (
	"errors"
	"fmt"
	"strings"
)

// Usage errors returned by ResolveLocator. The CLI reports these before
// any network activity.
var (
	ErrNotAURL     = errors.New("single argument must be a full webhook URL")
	ErrBadArgCount = errors.New("provide either <url> or <id> <token>")
)

// ResolveLocator normalizes the positional webhook reference into a
// canonical base URL. A single argument must be a full http(s) URL and
// is returned with trailing slashes stripped. Two arguments are treated
// as (id, token) and joined onto apiBase.
func ResolveLocator(args []string, apiBase string) (string, error) {
	switch len(args) {
	case 1:
		arg := args[0]
		if !strings.HasPrefix(arg, "http") {
			return "", ErrNotAURL
		}
		return strings.TrimRight(arg, "/"), nil
	case 2:
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(apiBase, "/"), args[0], args[1]), nil
	default:
		return "", ErrBadArgCount
	}
}
