// Package main provides the entry point for the keyforge command line
// tool. It generates customizable random keys, passphrases and RFC 4122
// identifiers from a cryptographically secure source, with control over
// length, character-class exclusions, uniqueness constraints, separator
// wrapping and base64 encoding, and can export the results to a file.
package main
