package requestlog

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// resolveEventID returns the correlation ID for the exchange: the configured
// header's value when present, otherwise a freshly generated UUID. Header
// lookup is case-insensitive by construction via http.Header.
func resolveEventID(r *http.Request, header string) string {
	if header != "" {
		if v := r.Header.Get(header); v != "" {
			return v
		}
	}
	return uuid.NewString()
}

// resolveClientIP tries the configured headers in order; the first present
// header wins. A matched value may carry a proxy chain
// ("client, proxy1, proxy2"), of which only the first entry is kept,
// trimmed. Falls back to the peer address host, then "unknown".
func resolveClientIP(r *http.Request, headers []string) string {
	for _, h := range headers {
		if v := r.Header.Get(h); v != "" {
			first, _, _ := strings.Cut(v, ",")
			return strings.TrimSpace(first)
		}
	}
	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}
	return "unknown"
}

// headerOrNil returns the header value, or nil so the field is logged as an
// explicit null rather than omitted.
func headerOrNil(r *http.Request, name string) any {
	if v := r.Header.Get(name); v != "" {
		return v
	}
	return nil
}

// requestAttr looks up a request-level attribute by name for log info
// projection.
func requestAttr(r *http.Request, name string) (string, bool) {
	switch name {
	case "method":
		return r.Method, true
	case "path":
		return r.URL.Path, true
	case "host":
		return r.Host, true
	case "proto":
		return r.Proto, true
	case "query":
		return r.URL.RawQuery, true
	case "remote_addr":
		return r.RemoteAddr, true
	}
	return "", false
}

// projectLogInfo copies configured fields into the record, checking request
// headers first and request attributes second. Absent sources are skipped
// rather than recorded as null.
func projectLogInfo(record map[string]any, r *http.Request, mapping map[string]string) {
	for src, dst := range mapping {
		if v := r.Header.Get(src); v != "" {
			record[dst] = v
			continue
		}
		if v, ok := requestAttr(r, src); ok {
			record[dst] = v
		}
	}
}
