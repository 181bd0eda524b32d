package profile_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtank/generichash/blake2b"
	"github.com/gtank/generichash/internal/profile"
)

const keyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestParseAndConfig(t *testing.T) {
	p, err := profile.Parse([]byte(`
digest_size: 32
key: ` + keyHex + `
salt: "0102"
personal: "myapp v1"
`))
	require.NoError(t, err)

	cfg, err := p.Config()
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.DigestSize)
	assert.Len(t, cfg.Key, 32)
	assert.Equal(t, []byte{1, 2}, cfg.Salt)
	assert.Equal(t, []byte("myapp v1"), cfg.Personal)

	h, err := blake2b.New(cfg)
	require.NoError(t, err)
	assert.True(t, h.Keyed())
	assert.Equal(t, 32, h.Size())
}

func TestEmptyProfile(t *testing.T) {
	p, err := profile.Parse(nil)
	require.NoError(t, err)

	cfg, err := p.Config()
	require.NoError(t, err)
	assert.Nil(t, cfg.Key)
	assert.Zero(t, cfg.DigestSize)
}

func TestUnknownField(t *testing.T) {
	_, err := profile.Parse([]byte("digest_sise: 32\n"))
	require.Error(t, err)
}

func TestKeyAndKeyFileConflict(t *testing.T) {
	p := &profile.Profile{Key: keyHex, KeyFile: "/nonexistent"}

	_, err := p.Config()
	require.Error(t, err)
}

func TestBadHex(t *testing.T) {
	_, err := (&profile.Profile{Salt: "zz"}).Config()
	require.ErrorContains(t, err, "salt")

	_, err = (&profile.Profile{Key: "abc"}).Config()
	require.ErrorContains(t, err, "key")
}

func TestLoadWithKeyFile(t *testing.T) {
	dir := t.TempDir()

	keyPath := filepath.Join(dir, "hash.key")
	require.NoError(t, os.WriteFile(keyPath, []byte(keyHex+"\n"), 0o600))

	profPath := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profPath, []byte("key_file: "+keyPath+"\n"), 0o600))

	p, err := profile.Load(profPath)
	require.NoError(t, err)

	cfg, err := p.Config()
	require.NoError(t, err)
	assert.Equal(t, keyHex, hex.EncodeToString(cfg.Key))
}

func TestLoadMissing(t *testing.T) {
	_, err := profile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "unable to read profile")
}
