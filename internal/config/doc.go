// Package config provides configuration loading, merging, and validation
// facilities for the secureid command.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later non-zero fields):
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is
//     exported first, without overriding variables already set)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
