// Package http constructs the HTTP client used for external API calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates the HTTP client for external API requests.
//
// http.DefaultClient has no timeout at all, so a custom client with an
// explicit Transport is used instead:
//   - Proxy honors the environment (HTTP_PROXY and friends)
//   - Dialer.Timeout bounds TCP connection setup
//   - MaxIdleConns / IdleConnTimeout keep reusable connections around
//     without letting them pile up
//   - Client.Timeout bounds the whole request, passed in by the caller
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
