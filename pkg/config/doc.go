// Package config loads pkgls configuration.
//
// Values are layered, later sources winning: the embedded defaults, the user
// config file, PKGLS_* environment variables and finally explicit overrides
// from command-line flags.
package config
