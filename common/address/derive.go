// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	lru "github.com/hashicorp/golang-lru"
)

// 派生地址规则:
// digest = sha256(len(s0) s0 ... len(sn) sn nonce program "ProgramDerivedAddress")
// nonce 从 255 开始递减, 取第一个不在 secp256k1 曲线上的 digest,
// 保证没有任何私钥可以为这个地址签名
const (
	// MaxSeeds max number of seeds in one derivation
	MaxSeeds = 16
	// MaxSeedLength max length of one seed
	MaxSeedLength = 64

	derivedMarker = "ProgramDerivedAddress"
)

var (
	// ErrMaxSeedLength a seed is longer than MaxSeedLength or too many seeds
	ErrMaxSeedLength = errors.New("ErrMaxSeedLength")
	// ErrInvalidSeeds the nonce does not yield a derived (off-curve) address
	ErrInvalidSeeds = errors.New("ErrInvalidSeeds")
	// ErrNoValidNonce no nonce in [0,255] yields an off-curve digest
	ErrNoValidNonce = errors.New("ErrNoValidNonce")
)

type derived struct {
	addr  string
	nonce int32
}

var deriveCache *lru.Cache

func init() {
	deriveCache, _ = lru.New(10240)
}

// DeriveAddress finds the canonical nonce for (program, seeds) and returns the
// derived address together with that nonce.
func DeriveAddress(program string, seeds ...[]byte) (string, int32, error) {
	if err := checkSeeds(seeds); err != nil {
		return "", 0, err
	}
	ckey := cacheKey(program, seeds)
	if v, ok := deriveCache.Get(ckey); ok {
		d := v.(derived)
		return d.addr, d.nonce, nil
	}
	for nonce := 255; nonce >= 0; nonce-- {
		digest := derivedDigest(program, uint8(nonce), seeds)
		if isOnCurve(digest) {
			continue
		}
		addr := PubKeyToAddress(digest).String()
		deriveCache.Add(ckey, derived{addr: addr, nonce: int32(nonce)})
		return addr, int32(nonce), nil
	}
	return "", 0, ErrNoValidNonce
}

// CreateDerivedAddress recomputes the address for an explicit nonce, used to
// verify that a stored record really lives at the address derived from its seeds.
func CreateDerivedAddress(program string, nonce int32, seeds ...[]byte) (string, error) {
	if err := checkSeeds(seeds); err != nil {
		return "", err
	}
	if nonce < 0 || nonce > 255 {
		return "", ErrInvalidSeeds
	}
	digest := derivedDigest(program, uint8(nonce), seeds)
	if isOnCurve(digest) {
		return "", ErrInvalidSeeds
	}
	return PubKeyToAddress(digest).String(), nil
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return ErrMaxSeedLength
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return ErrMaxSeedLength
		}
	}
	return nil
}

func derivedDigest(program string, nonce uint8, seeds [][]byte) []byte {
	h := sha256.New()
	for _, s := range seeds {
		h.Write([]byte{byte(len(s))})
		h.Write(s)
	}
	h.Write([]byte{nonce})
	h.Write([]byte(program))
	h.Write([]byte(derivedMarker))
	return h.Sum(nil)
}

// a 32 byte digest is a usable public key iff it is the x coordinate of a
// point on secp256k1
func isOnCurve(digest []byte) bool {
	compressed := make([]byte, 0, 33)
	compressed = append(compressed, 0x02)
	compressed = append(compressed, digest...)
	_, err := btcec.ParsePubKey(compressed)
	return err == nil
}

func cacheKey(program string, seeds [][]byte) string {
	parts := make([]string, 0, len(seeds)+1)
	parts = append(parts, program)
	for _, s := range seeds {
		parts = append(parts, hex.EncodeToString(s))
	}
	return strings.Join(parts, ":")
}
