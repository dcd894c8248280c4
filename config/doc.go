// Package config handles configuration loading and validation for the
// xmlrpc-serialize command.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// It controls output layout (indentation, depth limit) and log level.
package config
