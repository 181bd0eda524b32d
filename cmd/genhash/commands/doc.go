// Package commands defines the genhash CLI.
//
// Commands
//
//   - sum      Print BLAKE2b digests of files or stdin
//   - check    Verify digests listed in a checksum file
//   - keygen   Print a random hex key for keyed mode
//
// # Parameters
//
// Hashing parameters come from an optional YAML profile (--config) and are
// overridden by --size, --key, --key-file, --salt and --personal. They are
// validated once per invocation by blake2b.New.
package commands
