package blake2b

import (
	"hash"

	dchest "github.com/dchest/blake2b"
	"github.com/pkg/errors"
	xblake2b "golang.org/x/crypto/blake2b"
)

// Primitive is the binding boundary: it fills out with the BLAKE2b digest of
// in, producing len(out) bytes. A nil key means unkeyed mode. salt and
// personal are always full width.
type Primitive interface {
	Hash(out, in, key []byte, salt *[SaltBytes]byte, personal *[PersonalBytes]byte) error
}

// StreamPrimitive is a Primitive that can also hash incrementally.
type StreamPrimitive interface {
	Primitive
	NewHash(size int, key []byte, salt *[SaltBytes]byte, personal *[PersonalBytes]byte) (hash.Hash, error)
}

var (
	// DefaultPrimitive is backed by github.com/dchest/blake2b, which
	// supports the full parameter block.
	DefaultPrimitive StreamPrimitive = dchestPrimitive{}

	// XCryptoPrimitive is backed by golang.org/x/crypto/blake2b. It fails
	// for any non-zero salt or personalization.
	XCryptoPrimitive StreamPrimitive = xcryptoPrimitive{}
)

type dchestPrimitive struct{}

func (dchestPrimitive) NewHash(size int, key []byte, salt *[SaltBytes]byte, personal *[PersonalBytes]byte) (hash.Hash, error) {
	if size <= 0 || size > dchest.Size {
		return nil, errors.Errorf("unsupported digest size %d", size)
	}

	h, err := dchest.New(&dchest.Config{
		Size:   uint8(size),
		Key:    key,
		Salt:   salt[:],
		Person: personal[:],
	})
	if err != nil {
		return nil, errors.Wrap(err, "dchest/blake2b")
	}

	return h, nil
}

func (p dchestPrimitive) Hash(out, in, key []byte, salt *[SaltBytes]byte, personal *[PersonalBytes]byte) error {
	h, err := p.NewHash(len(out), key, salt, personal)
	if err != nil {
		return err
	}

	return finish(h, out, in)
}

type xcryptoPrimitive struct{}

func (xcryptoPrimitive) NewHash(size int, key []byte, salt *[SaltBytes]byte, personal *[PersonalBytes]byte) (hash.Hash, error) {
	if *salt != [SaltBytes]byte{} {
		return nil, errors.New("x/crypto/blake2b: salt is not supported")
	}
	if *personal != [PersonalBytes]byte{} {
		return nil, errors.New("x/crypto/blake2b: personalization is not supported")
	}

	h, err := xblake2b.New(size, key)
	if err != nil {
		return nil, errors.Wrap(err, "x/crypto/blake2b")
	}

	return h, nil
}

func (p xcryptoPrimitive) Hash(out, in, key []byte, salt *[SaltBytes]byte, personal *[PersonalBytes]byte) error {
	h, err := p.NewHash(len(out), key, salt, personal)
	if err != nil {
		return err
	}

	return finish(h, out, in)
}

func finish(h hash.Hash, out, in []byte) error {
	h.Write(in) //nolint:errcheck

	if n := copy(out, h.Sum(nil)); n != len(out) {
		return errors.Errorf("short digest: got %d bytes, want %d", n, len(out))
	}

	return nil
}
