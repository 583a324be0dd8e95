// Package simulation provides an end-to-end experiment harness for
// tests: a Scenario describes a grammar, an exposure stream, and a
// test phase; a Runner drives enumeration, judging, and evaluation the
// same way the CLI does, and assertion helpers check the interesting
// properties of the results.
package simulation
