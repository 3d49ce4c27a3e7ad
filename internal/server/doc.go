// Package server wires and runs the application's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown around the
// router built by the handler layer.
package server
