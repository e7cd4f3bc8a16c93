// Package app wires application dependencies for the CLI.
//
// LoadConfig reads config.yaml from the home directory and PASSVAULT_*
// environment overrides. NewWire builds the disk stores, HTTP clients,
// network services and repositories from that Config, exposing them via the
// Wire struct for commands to use.
package app
