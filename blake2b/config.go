package blake2b

// Config holds the user-visible parameters of a Hasher. The zero value is a
// valid unkeyed configuration producing BytesMax-byte digests.
type Config struct {
	// Key enables keyed mode. Nil means unkeyed; any non-nil key, including
	// an empty one, must be KeyBytesMin to KeyBytesMax bytes long.
	Key []byte

	// DigestSize is the output length in bytes. Zero selects BytesMax.
	DigestSize int

	// Salt is right-padded with zeros to SaltBytes.
	Salt []byte

	// Personal is right-padded with zeros to PersonalBytes.
	Personal []byte

	// Primitive computes the hash. Nil selects DefaultPrimitive.
	Primitive Primitive
}

// params is a Config after validation and padding.
type params struct {
	size     int
	key      []byte
	salt     [SaltBytes]byte
	personal [PersonalBytes]byte
	prim     Primitive
}

func (c Config) normalize() (*params, error) {
	p := &params{
		size: c.DigestSize,
		prim: c.Primitive,
	}

	if p.size == 0 {
		p.size = BytesMax
	}
	if p.size < BytesMin || p.size > BytesMax {
		return nil, &LengthError{Field: "digest size", Got: p.size, Min: BytesMin, Max: BytesMax}
	}

	if c.Key != nil {
		if len(c.Key) < KeyBytesMin || len(c.Key) > KeyBytesMax {
			return nil, &LengthError{Field: "key", Got: len(c.Key), Min: KeyBytesMin, Max: KeyBytesMax}
		}
		// The caller keeps ownership of its slice.
		p.key = append([]byte{}, c.Key...)
	}

	if err := zeroPad(p.salt[:], c.Salt, "salt"); err != nil {
		return nil, err
	}
	if err := zeroPad(p.personal[:], c.Personal, "personal"); err != nil {
		return nil, err
	}

	if p.prim == nil {
		p.prim = DefaultPrimitive
	}

	return p, nil
}

// zeroPad copies src into the fixed-width dst. dst is expected to be zeroed,
// so a short src ends up right-padded with zeros.
func zeroPad(dst, src []byte, field string) error {
	if len(src) > len(dst) {
		return &LengthError{Field: field, Got: len(src), Min: 0, Max: len(dst)}
	}

	copy(dst, src)

	return nil
}
