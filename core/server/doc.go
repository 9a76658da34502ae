// Package server holds the configuration for the optional HTTP surface
// that serves the persisted catalogs.
package server
