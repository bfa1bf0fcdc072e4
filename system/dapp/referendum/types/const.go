// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// ReferendumX 执行器名称, 同时也是派生地址的 program
const ReferendumX = "referendum"

// action 类型
const (
	ReferendumActionInitVault    = 1
	ReferendumActionCreateMarket = 2
	ReferendumActionVote         = 3
	ReferendumActionSettle       = 4
)

// log 类型
const (
	TyLogReferendumInitVault    = 801
	TyLogReferendumCreateMarket = 802
	TyLogReferendumVote         = 803
	TyLogReferendumSettle       = 804
	TyLogReferendumVault        = 805
)

// 市场结果
const (
	OutcomePending = int32(0)
	OutcomeYes     = int32(1)
	OutcomeNo      = int32(2)
)

// 投票方向
const (
	DirectionYes = int32(0)
	DirectionNo  = int32(1)
)

// 长度限制, 按字节计算
const (
	MaxQuestionLen    = 200
	MaxDescriptionLen = 500
	MaxMarketIDLen    = 64
)

// 派生地址的种子
const (
	SeedVault  = "vault"
	SeedMarket = "market"
	SeedEscrow = "escrow"
	SeedVote   = "vote"
)

// 查询方法名
const (
	FuncNameGetVault          = "GetVault"
	FuncNameGetMarket         = "GetMarket"
	FuncNameGetVote           = "GetVote"
	FuncNameGetEscrow         = "GetEscrow"
	FuncNameListMarkets       = "ListMarkets"
	FuncNameListVotesByVoter  = "ListVotesByVoter"
	FuncNameListVotesByMarket = "ListVotesByMarket"
)
