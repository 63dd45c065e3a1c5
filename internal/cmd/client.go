package cmd

import (
	"net/http"
	"time"
)

// httpClient builds the per-utility client honoring the configured timeout.
// A zero timeout lets the source fall back to its own default.
func httpClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		return nil
	}
	return &http.Client{Timeout: timeout}
}
