// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyToAddress(t *testing.T) {
	pubkey := "024a17b0c6eb3143839482faa7e917c9b90a8cfe5008dff748789b8cea1a3d08d5"
	b, err := hex.DecodeString(pubkey)
	require.NoError(t, err)
	addr := PubKeyToAddress(b)
	assert.Nil(t, CheckAddress(addr.String()))
	assert.Equal(t, addr.String(), PubKeyToAddress(b).String())
}

func TestCheckAddress(t *testing.T) {
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	addr := PubKeyToAddress(key.PubKey().SerializeCompressed())
	require.NoError(t, CheckAddress(addr.String()))

	parsed, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, parsed.Hash160)

	assert.Equal(t, ErrDecode58, CheckAddress("0OIl"))
	assert.Equal(t, ErrAddressShort, CheckAddress(base58.Encode([]byte{1, 2, 3})))

	raw := base58.Decode(addr.String())
	raw[24] ^= 0xff
	assert.Equal(t, ErrCheckSum, CheckAddress(base58.Encode(raw)))
}

func TestExecAddress(t *testing.T) {
	a1 := ExecAddress("referendum")
	a2 := ExecAddress("referendum")
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, ExecAddress("coins"))
	assert.Nil(t, CheckAddress(a1))
}

func TestDeriveAddress(t *testing.T) {
	addr, nonce, err := DeriveAddress("referendum", []byte("market"), []byte("m1"))
	require.NoError(t, err)
	assert.Nil(t, CheckAddress(addr))

	again, nonce2, err := DeriveAddress("referendum", []byte("market"), []byte("m1"))
	require.NoError(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, nonce, nonce2)

	other, _, err := DeriveAddress("referendum", []byte("market"), []byte("m2"))
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)

	otherProgram, _, err := DeriveAddress("coins", []byte("market"), []byte("m1"))
	require.NoError(t, err)
	assert.NotEqual(t, addr, otherProgram)

	created, err := CreateDerivedAddress("referendum", nonce, []byte("market"), []byte("m1"))
	require.NoError(t, err)
	assert.Equal(t, addr, created)
}

func TestDeriveAddressSeedBoundaries(t *testing.T) {
	a, _, err := DeriveAddress("referendum", []byte("ab"), []byte("c"))
	require.NoError(t, err)
	b, _, err := DeriveAddress("referendum", []byte("a"), []byte("bc"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDeriveAddressCanonicalNonce(t *testing.T) {
	for _, id := range []string{"m1", "m2", "m3", "m4", "m5", "m6"} {
		_, nonce, err := DeriveAddress("referendum", []byte("vote"), []byte(id))
		require.NoError(t, err)
		// every nonce above the canonical one is on the curve
		for n := nonce + 1; n <= 255; n++ {
			_, err := CreateDerivedAddress("referendum", n, []byte("vote"), []byte(id))
			assert.Equal(t, ErrInvalidSeeds, err)
		}
	}
	_, err := CreateDerivedAddress("referendum", 256, []byte("vote"))
	assert.Equal(t, ErrInvalidSeeds, err)
}

func TestDeriveAddressSeedLimits(t *testing.T) {
	long := make([]byte, MaxSeedLength+1)
	_, _, err := DeriveAddress("referendum", long)
	assert.Equal(t, ErrMaxSeedLength, err)

	seeds := make([][]byte, MaxSeeds+1)
	_, _, err = DeriveAddress("referendum", seeds...)
	assert.Equal(t, ErrMaxSeedLength, err)

	_, _, err = DeriveAddress("referendum", make([]byte, MaxSeedLength))
	assert.Nil(t, err)
}
