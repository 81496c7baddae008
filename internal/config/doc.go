// Package config holds the CLI/engine configuration shared by
// cmd/prominence, built with the functional-options idiom: DefaultConfig
// plus a chain of With... options.
package config
