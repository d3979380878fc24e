// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources only fill fields still zero):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in fallback defaults
//
// The main entry point is [GetStructuredConfig].
package config
