// Package generichash is a thin binding over BLAKE2b keyed hashing with
// support for salting and personalization. The hashing itself is done by the
// wrapped library; this module validates parameters, pads the fixed-width
// salt and personalization fields and hands them across to it.
//
// See the blake2b subpackage for the hasher and cmd/genhash for a command
// line front end.
package generichash
