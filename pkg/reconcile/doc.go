// Package reconcile is the desired-state engine: it compares a desired set
// of package names against the installed snapshot kept by a Tracker, asks
// the package manager to install what is missing, and classifies the
// result by looking at installed state again when the manager reports a
// failure.
//
// A manager's exit status is a weak signal. Warnings, partial transactions
// and concurrent package operations all make it unreliable, so the
// installed snapshot is treated as ground truth and the reported error only
// decides when that snapshot has to be refreshed.
//
// Nothing in this package reads global configuration. Callers pass the
// manager, the desired set and a logger explicitly.
package reconcile
