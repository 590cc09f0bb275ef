// Package server runs the web frontend's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
