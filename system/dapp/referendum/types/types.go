// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types referendum 执行器的 action, 状态和查询定义
package types

import (
	"strings"

	"github.com/33cn/referendum/common/address"
	"github.com/33cn/referendum/system/dapp"
	"github.com/33cn/referendum/types"
)

var actionName = map[string]int32{
	"InitVault":    ReferendumActionInitVault,
	"CreateMarket": ReferendumActionCreateMarket,
	"Vote":         ReferendumActionVote,
	"Settle":       ReferendumActionSettle,
}

// NewType referendum 的 action 编解码
func NewType() *dapp.ExecTypeBase {
	return dapp.NewExecType(ReferendumX, &ReferendumAction{}, actionName)
}

// VaultAddress vault 的派生地址
func VaultAddress() (string, int32, error) {
	return address.DeriveAddress(ReferendumX, []byte(SeedVault))
}

// MarketAddress 市场的派生地址
func MarketAddress(marketID string) (string, int32, error) {
	return address.DeriveAddress(ReferendumX, []byte(SeedMarket), []byte(marketID))
}

// EscrowAddress 市场托管账户的派生地址
func EscrowAddress(market string) (string, int32, error) {
	return address.DeriveAddress(ReferendumX, []byte(SeedEscrow), []byte(market))
}

// VoteAddress 投票的派生地址, 每个 (market, voter) 只有一个
func VoteAddress(market, voter string) (string, int32, error) {
	return address.DeriveAddress(ReferendumX, []byte(SeedVote), []byte(market), []byte(voter))
}

// CheckMarketAddress 校验市场记录确实保存在由它的 MarketId 派生的地址上
func CheckMarketAddress(addr string, market *MarketAccount) error {
	derived, err := address.CreateDerivedAddress(ReferendumX, market.Nonce, []byte(SeedMarket), []byte(market.MarketId))
	if err != nil {
		return err
	}
	if derived != addr {
		return address.ErrInvalidSeeds
	}
	return nil
}

// CreateInitVaultTx 构造初始化 vault 的交易
func CreateInitVaultTx(fee uint64, nonce int64) *types.Transaction {
	action := &ReferendumAction{Ty: ReferendumActionInitVault, Value: &ReferendumAction_InitVault{InitVault: &ReferendumInitVault{}}}
	return types.CreateTx(ReferendumX, action, fee, nonce)
}

// CreateMarketTx 构造创建市场的交易
func CreateMarketTx(create *ReferendumCreateMarket, fee uint64, nonce int64) *types.Transaction {
	action := &ReferendumAction{Ty: ReferendumActionCreateMarket, Value: &ReferendumAction_CreateMarket{CreateMarket: create}}
	return types.CreateTx(ReferendumX, action, fee, nonce)
}

// CreateVoteTx 构造投票交易
func CreateVoteTx(vote *ReferendumVote, fee uint64, nonce int64) *types.Transaction {
	action := &ReferendumAction{Ty: ReferendumActionVote, Value: &ReferendumAction_Vote{Vote: vote}}
	return types.CreateTx(ReferendumX, action, fee, nonce)
}

// CreateSettleTx 构造结算交易
func CreateSettleTx(settle *ReferendumSettle, fee uint64, nonce int64) *types.Transaction {
	action := &ReferendumAction{Ty: ReferendumActionSettle, Value: &ReferendumAction_Settle{Settle: settle}}
	return types.CreateTx(ReferendumX, action, fee, nonce)
}

// OutcomeName pending/yes/no
func OutcomeName(outcome int32) string {
	switch outcome {
	case OutcomePending:
		return "pending"
	case OutcomeYes:
		return "yes"
	case OutcomeNo:
		return "no"
	}
	return "unknown"
}

// ParseOutcome 解析 pending/yes/no, 不区分大小写
func ParseOutcome(s string) (int32, error) {
	switch strings.ToLower(s) {
	case "pending":
		return OutcomePending, nil
	case "yes":
		return OutcomeYes, nil
	case "no":
		return OutcomeNo, nil
	}
	return 0, ErrInvalidOutcome
}

// DirectionName yes/no
func DirectionName(direction int32) string {
	switch direction {
	case DirectionYes:
		return "yes"
	case DirectionNo:
		return "no"
	}
	return "unknown"
}

// ParseDirection 解析 yes/no, 不区分大小写
func ParseDirection(s string) (int32, error) {
	switch strings.ToLower(s) {
	case "yes":
		return DirectionYes, nil
	case "no":
		return DirectionNo, nil
	}
	return 0, ErrInvalidDirection
}
