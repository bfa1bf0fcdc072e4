// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"errors"
	"math/big"
	"time"

	"github.com/33cn/referendum/common"
	"github.com/33cn/referendum/common/address"
	"github.com/33cn/referendum/types"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// amount 的精度, 1 个币 = 1e8
const precision = 8

var (
	// ErrAmountFormat 金额不是非负的十进制数, 或者小数位超过精度
	ErrAmountFormat = errors.New("ErrAmountFormat")
	// ErrPrivKeyFormat 私钥不是32字节的hex
	ErrPrivKeyFormat = errors.New("ErrPrivKeyFormat")
)

// FormatAmountValue2Display 将传输、计算的amount值格式化成显示值
func FormatAmountValue2Display(amount uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -precision).String()
}

// FormatAmountDisplay2Value 将显示、输入的amount值格式话成传输、计算值
func FormatAmountDisplay2Value(amount string) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, ErrAmountFormat
	}
	if d.IsNegative() {
		return 0, ErrAmountFormat
	}
	d = d.Shift(precision)
	if !d.Equal(d.Truncate(0)) {
		return 0, ErrAmountFormat
	}
	v := d.BigInt()
	if !v.IsUint64() {
		return 0, types.ErrOverflow
	}
	return v.Uint64(), nil
}

// GetAmountValue 将命令行中的amount值转换成uint64
func GetAmountValue(cmd *cobra.Command, field string) (uint64, error) {
	amount, _ := cmd.Flags().GetString(field)
	return FormatAmountDisplay2Value(amount)
}

// DecodeAccount 余额转换成显示值
func DecodeAccount(acc *types.Account) *AccountResult {
	return &AccountResult{
		Currency: acc.Currency,
		Balance:  FormatAmountValue2Display(acc.Balance),
		Addr:     acc.Addr,
	}
}

// DecodeTxResult 交易执行结果
func DecodeTxResult(res *types.TxResult) *TxDetailResult {
	result := &TxDetailResult{
		Hash:      common.ToHex(res.Tx.Hash()),
		Execer:    string(res.Tx.Execer),
		From:      res.Tx.From(),
		To:        res.Tx.To,
		Fee:       FormatAmountValue2Display(res.Tx.Fee),
		Height:    res.Height,
		Index:     res.Index,
		BlockTime: res.BlockTime,
	}
	if res.Receipt != nil {
		result.Ty = res.Receipt.Ty
		for _, l := range res.Receipt.Logs {
			result.LogTys = append(result.LogTys, l.Ty)
		}
	}
	return result
}

// NewKey 新的 secp256k1 私钥
func NewKey() (*KeyResult, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &KeyResult{
		Addr:    address.PubKeyToAddress(priv.PubKey().SerializeCompressed()).String(),
		PrivKey: hex.EncodeToString(priv.Serialize()),
	}, nil
}

// DecodePrivKey hex 私钥, 0x 前缀可选
func DecodePrivKey(key string) (*btcec.PrivateKey, error) {
	b, err := common.FromHex(key)
	if err != nil || len(b) != 32 {
		return nil, ErrPrivKeyFormat
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv, nil
}

// GetPrivKey 命令行中的私钥
func GetPrivKey(cmd *cobra.Command, field string) (*btcec.PrivateKey, error) {
	key, _ := cmd.Flags().GetString(field)
	return DecodePrivKey(key)
}

// GetEndTimestamp 截止时间, 优先使用 unix 时间, 否则从现在开始加上 duration
func GetEndTimestamp(cmd *cobra.Command, now time.Time) (int64, error) {
	end, _ := cmd.Flags().GetInt64("end")
	if end > 0 {
		return end, nil
	}
	duration, _ := cmd.Flags().GetDuration("duration")
	if duration <= 0 {
		return 0, errors.New("one of --end or --duration is required")
	}
	return now.Add(duration).Unix(), nil
}
