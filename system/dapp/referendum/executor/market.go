// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cmath "github.com/33cn/referendum/common/math"
	"github.com/33cn/referendum/system/dapp"
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
)

// CreateMarket 只有 authority 可以创建市场
// 检查顺序: 权限, 问题长度, 描述长度, ID长度, 截止时间, 地址冲突, 计数溢出
func (a *action) CreateMarket(create *rty.ReferendumCreateMarket) (*types.Receipt, error) {
	vault, vaultAddr, err := a.checkAuthority()
	if err != nil {
		return nil, err
	}
	if len(create.Question) > rty.MaxQuestionLen {
		return nil, rty.ErrQuestionTooLong
	}
	if len(create.Description) > rty.MaxDescriptionLen {
		return nil, rty.ErrDescriptionTooLong
	}
	if len(create.MarketId) > rty.MaxMarketIDLen {
		return nil, rty.ErrMarketIDTooLong
	}
	if create.EndTimestamp <= a.blocktime {
		return nil, rty.ErrEndDateInPast
	}
	addr, nonce, err := rty.MarketAddress(create.MarketId)
	if err != nil {
		return nil, err
	}
	found, err := exists(a.db, addr)
	if err != nil {
		return nil, err
	}
	if found {
		rlog.Debug("CreateMarket", "marketId", create.MarketId, "err", types.ErrAlreadyExists)
		return nil, types.ErrAlreadyExists
	}
	total, err := cmath.SafeAdd(vault.TotalMarkets, 1)
	if err != nil {
		return nil, err
	}
	market := &rty.MarketAccount{
		MarketId:     create.MarketId,
		Authority:    a.fromaddr,
		Question:     create.Question,
		Description:  create.Description,
		EndTimestamp: create.EndTimestamp,
		Outcome:      rty.OutcomePending,
		CreatedAt:    a.blocktime,
		Nonce:        nonce,
	}
	vault.TotalMarkets = total

	kvc := dapp.NewKVCreator(a.db)
	kvc.AddMsg(stateKey(addr), market)
	kvc.AddMsg(stateKey(vaultAddr), vault)
	rlog.Info("CreateMarket", "market", addr, "marketId", market.MarketId, "end", market.EndTimestamp)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: kvc.KVList(),
		Logs: []*types.ReceiptLog{
			marketLog(rty.TyLogReferendumCreateMarket, addr, market, rty.OutcomePending),
			vaultLog(rty.TyLogReferendumVault, vaultAddr, vault),
		},
	}, nil
}

// Settle 只有 authority 可以结算, 结果只能从 Pending 变为 Yes 或 No 一次
// 不检查截止时间
func (a *action) Settle(settle *rty.ReferendumSettle) (*types.Receipt, error) {
	if _, _, err := a.checkAuthority(); err != nil {
		return nil, err
	}
	if settle.Outcome != rty.OutcomeYes && settle.Outcome != rty.OutcomeNo {
		return nil, rty.ErrInvalidOutcome
	}
	market, err := loadMarket(a.db, settle.Market)
	if err != nil {
		return nil, err
	}
	if market.Outcome != rty.OutcomePending {
		return nil, rty.ErrMarketAlreadyResolved
	}
	if a.blocktime < market.EndTimestamp {
		rlog.Warn("Settle before market end", "market", settle.Market, "blocktime", a.blocktime, "end", market.EndTimestamp)
	}
	prev := market.Outcome
	market.Outcome = settle.Outcome

	kvc := dapp.NewKVCreator(a.db)
	kvc.AddMsg(stateKey(settle.Market), market)
	rlog.Info("Settle", "market", settle.Market, "outcome", rty.OutcomeName(market.Outcome))
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kvc.KVList(),
		Logs: []*types.ReceiptLog{marketLog(rty.TyLogReferendumSettle, settle.Market, market, prev)},
	}, nil
}
