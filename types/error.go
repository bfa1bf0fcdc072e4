// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"

	cmath "github.com/33cn/referendum/common/math"
)

var (
	// ErrNotFound 数据不存在
	ErrNotFound = errors.New("ErrNotFound")
	// ErrAlreadyExists the storage key is already allocated
	ErrAlreadyExists = errors.New("ErrAlreadyExists")
	// ErrOverflow counter or balance would overflow 64 bits
	ErrOverflow = cmath.ErrOverflow
	// ErrNoBalance 余额不足
	ErrNoBalance = errors.New("ErrNoBalance")
	// ErrAmount 金额必须大于0
	ErrAmount = errors.New("ErrAmount")
	// ErrSendSameToRecv 不能转账给自己
	ErrSendSameToRecv = errors.New("ErrSendSameToRecv")
	// ErrSign 签名错误
	ErrSign = errors.New("ErrSign")
	// ErrNoSignature tx has no signature
	ErrNoSignature = errors.New("ErrNoSignature")
	// ErrActionNotSupport 不支持的action
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	// ErrUnRegistedDriver 执行器未注册
	ErrUnRegistedDriver = errors.New("ErrUnRegistedDriver")
	// ErrTxFeeTooLow 手续费太低
	ErrTxFeeTooLow = errors.New("ErrTxFeeTooLow")
	// ErrTxMsgSizeTooBig tx is larger than MaxTxSize
	ErrTxMsgSizeTooBig = errors.New("ErrTxMsgSizeTooBig")
	// ErrBlockHeight block height is not last+1
	ErrBlockHeight = errors.New("ErrBlockHeight")
	// ErrBlockTime block time goes backwards
	ErrBlockTime = errors.New("ErrBlockTime")
	// ErrReRunGenesis genesis only at height 0
	ErrReRunGenesis = errors.New("ErrReRunGenesis")
	// ErrInvalidAddress 地址错误
	ErrInvalidAddress = errors.New("ErrInvalidAddress")
	// ErrInvalidParam 参数错误
	ErrInvalidParam = errors.New("ErrInvalidParam")
	// ErrNotAllowKey the executor wrote a key outside its prefix
	ErrNotAllowKey = errors.New("ErrNotAllowKey")
	// ErrTooManyTxs block has more than MaxTxsPerBlock
	ErrTooManyTxs = errors.New("ErrTooManyTxs")
	// ErrNotAllowMemSetKey receipt kv and the keys set in statedb differ
	ErrNotAllowMemSetKey = errors.New("ErrNotAllowMemSetKey")
	// ErrTxDup 交易已经执行过
	ErrTxDup = errors.New("ErrTxDup")
	// ErrParentHash 父区块hash不匹配
	ErrParentHash = errors.New("ErrParentHash")
	// ErrExecPanic 执行器 panic
	ErrExecPanic = errors.New("ErrExecPanic")
)
