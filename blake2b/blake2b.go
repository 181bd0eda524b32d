// Package blake2b binds the BLAKE2b keyed hash with support for salting and
// personalization. BLAKE2b is optimized for 64-bit platforms and produces
// digests of any size between BytesMin and BytesMax bytes.
//
// The compression function is not implemented here. A Hasher validates its
// Config once, keeps the normalized parameters and passes them to a Primitive
// for every message.
package blake2b

import (
	"crypto/subtle"
	"hash"
)

// These bounds are the ones published by the bound library for BLAKE2b.
const (
	// Smallest digest the binding will produce, in bytes.
	BytesMin = 16
	// Largest digest, in bytes. Also the default digest size.
	BytesMax = 64
	// Recommended digest size for general use.
	Bytes = 32
	// Shortest key accepted in keyed mode.
	KeyBytesMin = 16
	// Longest key accepted in keyed mode.
	KeyBytesMax = 64
	// Recommended key size.
	KeyBytes = 32
	// Width of the salt field.
	SaltBytes = 16
	// Width of the personalization field.
	PersonalBytes = 16
)

// Limits is a read-only view of the library bounds.
type Limits struct {
	BytesMin, BytesMax, Bytes          int
	KeyBytesMin, KeyBytesMax, KeyBytes int
	SaltBytes, PersonalBytes           int
}

// Constants returns the bounds the binding validates against.
func Constants() Limits {
	return Limits{
		BytesMin:      BytesMin,
		BytesMax:      BytesMax,
		Bytes:         Bytes,
		KeyBytesMin:   KeyBytesMin,
		KeyBytesMax:   KeyBytesMax,
		KeyBytes:      KeyBytes,
		SaltBytes:     SaltBytes,
		PersonalBytes: PersonalBytes,
	}
}

// Hasher computes BLAKE2b digests for a fixed configuration. It holds no
// state between calls and is safe for concurrent use.
type Hasher struct {
	size     int
	key      []byte
	salt     [SaltBytes]byte
	personal [PersonalBytes]byte
	prim     Primitive
}

// New validates cfg and returns a Hasher for it. Key and digest size bound
// violations are reported as *LengthError, as are salt or personalization
// values wider than their field. A DigestSize of zero is not a violation: it
// selects the default of BytesMax bytes. Shorter salt and personalization
// values are right-padded with zeros.
func New(cfg Config) (*Hasher, error) {
	p, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	return &Hasher{
		size:     p.size,
		key:      p.key,
		salt:     p.salt,
		personal: p.personal,
		prim:     p.prim,
	}, nil
}

// Sum is shorthand for New followed by Digest.
func Sum(cfg Config, message []byte) ([]byte, error) {
	h, err := New(cfg)
	if err != nil {
		return nil, err
	}

	return h.Digest(message)
}

// Digest returns the digest of message in a newly allocated slice of Size()
// bytes. The only error is a *CryptoError from the primitive.
func (h *Hasher) Digest(message []byte) ([]byte, error) {
	out := make([]byte, h.size)

	salt, personal := h.salt, h.personal
	if err := h.prim.Hash(out, message, h.key, &salt, &personal); err != nil {
		return nil, &CryptoError{Op: "digest", Err: err}
	}

	return out, nil
}

// NewStream returns a hash.Hash computing the same digest as Digest over
// everything written to it. The primitive must implement StreamPrimitive.
func (h *Hasher) NewStream() (hash.Hash, error) {
	sp, ok := h.prim.(StreamPrimitive)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	salt, personal := h.salt, h.personal

	s, err := sp.NewHash(h.size, h.key, &salt, &personal)
	if err != nil {
		return nil, &CryptoError{Op: "stream", Err: err}
	}

	return s, nil
}

// Verify reports whether mac is the digest of message. The comparison runs in
// constant time with respect to the contents of mac.
func (h *Hasher) Verify(message, mac []byte) (bool, error) {
	sum, err := h.Digest(message)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(sum, mac) == 1, nil
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return h.size }

// Keyed reports whether the hasher was configured with a key.
func (h *Hasher) Keyed() bool { return h.key != nil }

// Salt returns the zero-padded salt.
func (h *Hasher) Salt() [SaltBytes]byte { return h.salt }

// Personal returns the zero-padded personalization string.
func (h *Hasher) Personal() [PersonalBytes]byte { return h.personal }
