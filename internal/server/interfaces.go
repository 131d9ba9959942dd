package server

// Server is one listener owned by the broker process: the NATS subscriber
// or the status HTTP endpoint.
type Server interface {
	// RunServer blocks until the listener stops.
	RunServer()

	// Shutdown stops the listener. Calling it twice is safe.
	Shutdown()
}
