// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the NATS broker and the HTTP status
// server lifecycles, including startup, signal handling, and graceful
// shutdown of all enabled transports.
package server
