// Package commands defines the streamchat CLI and wires dependencies for subcommands.
//
// Commands
//
//   - server <port>           Listen for one peer and chat as the responder
//   - client <address:port>   Connect to a server and chat as the initiator
//   - params                  Print the protocol constants as YAML
//
// # Implementation
//
// The root command loads configuration (flags, STREAMCHAT_* environment,
// optional --config file) and builds the console and session service before
// any subcommand runs, so handlers share one app context.
package commands
