// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services, the local session store,
// and the server adapter into a single process lifecycle.
package client
