// Package shiptesting holds test helpers shared by the search packages: a
// quiet logger and scratch directory per test, and a brute force Life-like
// grid simulator used to confirm that discovered patterns really are
// spaceships.
package shiptesting
