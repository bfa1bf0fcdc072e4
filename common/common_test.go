// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))
	assert.Equal(t, "", ToHex(nil))

	b, err := FromHex("0x0102ff")
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
	b, err = FromHex("0102ff")
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
	_, err = FromHex("0xzz")
	assert.NotNil(t, err)
}

func TestSha256(t *testing.T) {
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ToHex(Sha256(nil)))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, Sha256(Sha256([]byte("abc"))), sum[:])
	h160 := Rimp160AfterSha256([]byte("abc"))
	assert.Len(t, h160[:], 20)
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	src[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, dst)
}
