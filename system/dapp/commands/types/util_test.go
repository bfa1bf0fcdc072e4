// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"math"
	"testing"
	"time"

	"github.com/33cn/referendum/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.5", FormatAmountValue2Display(150000000))
	assert.Equal(t, "0.00000001", FormatAmountValue2Display(1))
	assert.Equal(t, "0", FormatAmountValue2Display(0))
	assert.Equal(t, "184467440737.09551615", FormatAmountValue2Display(math.MaxUint64))

	v, err := FormatAmountDisplay2Value("1.5")
	assert.NoError(t, err)
	assert.Equal(t, uint64(150000000), v)
	v, err = FormatAmountDisplay2Value("0.00000001")
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	v, err = FormatAmountDisplay2Value("184467440737.09551615")
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	_, err = FormatAmountDisplay2Value("0.000000001")
	assert.Equal(t, ErrAmountFormat, err)
	_, err = FormatAmountDisplay2Value("-1")
	assert.Equal(t, ErrAmountFormat, err)
	_, err = FormatAmountDisplay2Value("abc")
	assert.Equal(t, ErrAmountFormat, err)
	_, err = FormatAmountDisplay2Value("184467440737.09551616")
	assert.Equal(t, types.ErrOverflow, err)
}

func TestPrivKey(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)
	priv, err := DecodePrivKey(key.PrivKey)
	require.NoError(t, err)
	assert.Equal(t, key.PrivKey, hex.EncodeToString(priv.Serialize()))

	_, err = DecodePrivKey("0x1234")
	assert.Equal(t, ErrPrivKeyFormat, err)
	_, err = DecodePrivKey("xyz")
	assert.Equal(t, ErrPrivKeyFormat, err)
}

func TestGetEndTimestamp(t *testing.T) {
	now := time.Unix(1600000000, 0)
	cmd := &cobra.Command{}
	cmd.Flags().Int64("end", 0, "")
	cmd.Flags().Duration("duration", 0, "")

	_, err := GetEndTimestamp(cmd, now)
	assert.Error(t, err)

	require.NoError(t, cmd.Flags().Set("duration", "1h"))
	end, err := GetEndTimestamp(cmd, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1600003600), end)

	require.NoError(t, cmd.Flags().Set("end", "1700000000"))
	end, err = GetEndTimestamp(cmd, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), end)
}
