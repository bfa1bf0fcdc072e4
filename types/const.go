// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Version 版本号
const Version = "1.0.0"

// coin conversation
const (
	Coin      uint64 = 1e8
	MaxTxSize        = 100000 //100K
	// MaxTxsPerBlock 单个区块最多交易数
	MaxTxsPerBlock = 100000
)

// 签名类型
const (
	SECP256K1 = 1
)

//log type
const (
	TyLogErr = 1
	TyLogFee = 2
	//coins
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogGenesisTransfer = 11
)

//exec type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// db key prefix
const (
	// StatePrefix 状态数据库的key前缀, 只有执行器能修改
	StatePrefix = "mavl-"
	// LocalPrefix 本地数据库的key前缀, 由ExecLocal生成
	LocalPrefix = "LODB-"
)

// ExecerNone 无执行器
var ExecerNone = []byte("none")
