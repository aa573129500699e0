// Package testutil provides helpers shared by pkgls tests.
//
// Key components:
//   - TestEnvironment: isolates configuration, logging and PKGLS_* variables
//   - FakeRunner: an in-memory package database answering manager commands
package testutil
