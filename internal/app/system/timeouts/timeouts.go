// Package timeouts provides centralized timeout values for handler operations.
//
// These are used with context.WithTimeout for database I/O in HTTP
// handlers. If the store hangs past its deadline the request fails
// instead of hanging with it.
package timeouts

import "time"

const (
	// Ping is for health checks and connectivity verification.
	Ping = 2 * time.Second

	// Short is for simple single-document reads and writes, such as
	// appending one submission row.
	Short = 5 * time.Second
)
