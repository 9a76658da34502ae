// Package middleware groups the Fiber middlewares used by the directory
// server: ray-id request correlation and API-key authentication.
package middleware
