// Package app contains the core application logic. It defines the run
// configuration, the App that owns a logger and a random source, and the
// sequential generation pipeline, decoupled from the CLI entrypoint.
package app
