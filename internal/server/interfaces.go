package server

import "context"

// Server defines the lifecycle contract of the process's transport server.
type Server interface {
	// RunServer serves requests until a stop signal arrives, then shuts the
	// server down gracefully.
	RunServer()

	// Run is like RunServer but stops when ctx is done.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
