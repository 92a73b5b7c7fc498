// Package config provides configuration loading, merging, and validation
// facilities for the daemon and the terminal client.
//
// Configuration is assembled from multiple sources; a field set by an
// earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the daemon,
// [GetClientConfig] for the client and [LoadDecisionRules] for the cel
// strategy's rules file.
package config
