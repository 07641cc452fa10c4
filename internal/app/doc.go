// Package app wires application dependencies for the CLI.
//
// It loads Config through viper (defaults, optional YAML file, STREAMCHAT_*
// environment variables, bound flags) and builds the console and session
// service from it, exposing them via the Wire struct for commands to use.
package app
