// Package network provides the pre-configured HTTP client shared across the application.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client used for remote lookups such as the release
// version check. Timeouts are short: every remote call in the application is optional
// and must never stall the interface.
var Client = &http.Client{
	Timeout:   15 * time.Second,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}
