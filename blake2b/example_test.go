package blake2b_test

import (
	"fmt"

	"github.com/gtank/generichash/blake2b"
)

func ExampleSum() {
	sum, err := blake2b.Sum(blake2b.Config{DigestSize: blake2b.Bytes}, []byte("abc"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", sum)
	// Output: bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319
}

func ExampleHasher_Verify() {
	key := make([]byte, blake2b.KeyBytes)

	h, err := blake2b.New(blake2b.Config{
		Key:        key,
		DigestSize: blake2b.Bytes,
		Personal:   []byte("example v1"),
	})
	if err != nil {
		panic(err)
	}

	mac, _ := h.Digest([]byte("message"))
	ok, _ := h.Verify([]byte("message"), mac)
	fmt.Println(len(mac), ok)
	// Output: 32 true
}
