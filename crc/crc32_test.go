package crc_test

import (
	"math/rand"
	"testing"

	"github.com/medcore/med/crc"
)

func TestCombineMatchesWholeChecksum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := make([]byte, 137)
	b := make([]byte, 53)
	rng.Read(a)
	rng.Read(b)

	want := crc.Checksum(append(append([]byte{}, a...), b...))

	got := crc.Combine(crc.Checksum(a), crc.Checksum(b), int64(len(b)))
	if got != want {
		t.Fatalf("Combine() = %#x, want %#x", got, want)
	}
}

func TestCombineEmptyB(t *testing.T) {
	a := []byte("hello world")
	crcA := crc.Checksum(a)
	if got := crc.Combine(crcA, 0, 0); got != crcA {
		t.Fatalf("Combine with empty B = %#x, want %#x", got, crcA)
	}
}
