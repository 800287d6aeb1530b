// Package httputil provides shared HTTP clients with connection pooling
// and safe response handling for outbound deliveries such as webhook
// notifications.
package httputil

import (
	"io"
	"net"
	"net/http"
	"sync"
	"time"
)

// MaxResponseSize caps response body reads. Webhook receivers should
// answer with a short acknowledgement; anything larger is dropped.
const MaxResponseSize = 1 * 1024 * 1024 // 1MB

// Shared transport with connection pooling, reused by every client so
// repeated deliveries to the same host keep their TCP connections.
var sharedTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ForceAttemptHTTP2:     true,
	MaxIdleConns:          50,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
}

// TimeoutTier selects a client timeout for the operation type.
type TimeoutTier int

const (
	// TierFast for health checks and acknowledgement-only endpoints (5s)
	TierFast TimeoutTier = iota
	// TierMedium for standard deliveries (15s)
	TierMedium
)

var (
	clientFast   *http.Client
	clientMedium *http.Client
	clientOnce   sync.Once
)

func initClients() {
	clientFast = &http.Client{Timeout: 5 * time.Second, Transport: sharedTransport}
	clientMedium = &http.Client{Timeout: 15 * time.Second, Transport: sharedTransport}
}

// Client returns the shared client for a timeout tier. Use these instead
// of constructing http.Client per request; they share one pool.
func Client(tier TimeoutTier) *http.Client {
	clientOnce.Do(initClients)
	if tier == TierFast {
		return clientFast
	}
	return clientMedium
}

// ReadResponseBody reads a response body with a hard size limit.
func ReadResponseBody(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = MaxResponseSize
	}
	return io.ReadAll(io.LimitReader(r, maxSize))
}

// DrainAndClose drains and closes a response body so the connection can
// return to the pool.
func DrainAndClose(body io.ReadCloser) {
	if body != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(body, MaxResponseSize))
		_ = body.Close()
	}
}
