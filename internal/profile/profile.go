// Package profile loads hashing parameters from a YAML file.
package profile

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gtank/generichash/blake2b"
)

// Profile is the on-disk form of a blake2b.Config. Binary values are hex
// encoded; the personalization string is taken verbatim.
type Profile struct {
	DigestSize int    `yaml:"digest_size,omitempty"`
	Key        string `yaml:"key,omitempty"`
	KeyFile    string `yaml:"key_file,omitempty"`
	Salt       string `yaml:"salt,omitempty"`
	Personal   string `yaml:"personal,omitempty"`
}

// Load reads and parses the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrap(err, "unable to read profile")
	}

	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid profile %v", path)
	}

	return p, nil
}

// Parse decodes a profile, rejecting unknown fields.
func Parse(data []byte) (*Profile, error) {
	p := &Profile{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(p); err != nil {
		// an empty document is an empty profile
		if errors.Is(err, io.EOF) {
			return p, nil
		}

		return nil, errors.Wrap(err, "unable to decode profile")
	}

	return p, nil
}

// Config converts the profile to a blake2b.Config. Length checks are left to
// blake2b.New.
func (p *Profile) Config() (blake2b.Config, error) {
	var cfg blake2b.Config

	if p.Key != "" && p.KeyFile != "" {
		return cfg, errors.New("key and key_file are mutually exclusive")
	}

	cfg.DigestSize = p.DigestSize

	switch {
	case p.Key != "":
		k, err := decodeHex("key", p.Key)
		if err != nil {
			return cfg, err
		}

		cfg.Key = k

	case p.KeyFile != "":
		k, err := ReadKeyFile(p.KeyFile)
		if err != nil {
			return cfg, err
		}

		cfg.Key = k
	}

	if p.Salt != "" {
		s, err := decodeHex("salt", p.Salt)
		if err != nil {
			return cfg, err
		}

		cfg.Salt = s
	}

	if p.Personal != "" {
		cfg.Personal = []byte(p.Personal)
	}

	return cfg, nil
}

// ReadKeyFile reads a hex encoded key, ignoring surrounding whitespace.
func ReadKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrap(err, "unable to read key file")
	}

	return decodeHex("key file", string(data))
}

func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex in %v", field)
	}

	return b, nil
}
