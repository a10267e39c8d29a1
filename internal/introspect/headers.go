package introspect

import (
	"fmt"
	"net/http"
	"strings"
)

// ParseHeaders converts "name:value" pairs into an http.Header. The pair is
// split at the first colon so values may contain colons themselves.
func ParseHeaders(pairs []string) (http.Header, error) {
	headers := make(http.Header, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected name:value", pair)
		}
		headers.Add(name, strings.TrimSpace(value))
	}
	return headers, nil
}
