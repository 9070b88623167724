package portal

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

// ParseClientIP prefers the first X-Forwarded-For hop, falling back to the
// socket's remote address.
func ParseClientIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	remote := strings.TrimSpace(r.RemoteAddr)

	if host, _, err := net.SplitHostPort(remote); err == nil && host != "" {
		return host
	}

	return remote
}
