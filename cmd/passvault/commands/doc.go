// Package commands defines the passvault CLI and wires dependencies for subcommands.
//
// Commands
//
//   - config           Fetch and print the server configuration
//   - device known     Ask whether a device has logged in to an account
//   - device trust     Upload trusted-device keys for this installation
//   - push register    Register a push notification token
//   - events send      Report an organization event
//   - settings timeout Show or set the vault timeout
//   - settings action  Show or set the vault timeout action
//   - pin              Enable or clear unlock with PIN
//   - status           Fetch config and device state together
//
// # Implementation
//
// The root command loads the Config and builds the app.Wire before any
// subcommand runs. Handlers share that graph and a context that carries the
// process logger.
package commands
