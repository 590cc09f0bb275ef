// Package config provides configuration loading, merging, and validation
// facilities for the search client and the web frontend.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (a .env file is loaded into the environment
//     first, without overriding variables that are already set)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetFrontendConfig] for the web frontend.
package config
