// Package server runs the HTTP API and shuts it down gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server
