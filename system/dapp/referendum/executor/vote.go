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

// Vote 先把金额转入托管账户, 再分配投票记录和更新计数
// 任何一步失败, 整个交易回滚
func (a *action) Vote(vote *rty.ReferendumVote) (*types.Receipt, error) {
	market, err := loadMarket(a.db, vote.Market)
	if err != nil {
		return nil, err
	}
	if vote.Direction != rty.DirectionYes && vote.Direction != rty.DirectionNo {
		return nil, rty.ErrInvalidDirection
	}
	if vote.Amount == 0 {
		return nil, rty.ErrZeroAmount
	}
	if market.Outcome != rty.OutcomePending {
		return nil, rty.ErrMarketAlreadyResolved
	}
	if a.blocktime >= market.EndTimestamp {
		return nil, rty.ErrMarketExpired
	}
	escrow, _, err := rty.EscrowAddress(vote.Market)
	if err != nil {
		return nil, err
	}
	voteAddr, nonce, err := rty.VoteAddress(vote.Market, a.fromaddr)
	if err != nil {
		return nil, err
	}

	receipt, err := a.coinsAccount.Transfer(a.fromaddr, escrow, vote.Amount)
	if err != nil {
		rlog.Debug("Vote transfer", "from", a.fromaddr, "escrow", escrow, "amount", vote.Amount, "err", err)
		return nil, err
	}
	found, err := exists(a.db, voteAddr)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, types.ErrAlreadyExists
	}
	if vote.Direction == rty.DirectionYes {
		market.YesCount, err = cmath.SafeAdd(market.YesCount, 1)
	} else {
		market.NoCount, err = cmath.SafeAdd(market.NoCount, 1)
	}
	if err != nil {
		return nil, err
	}
	market.TotalPool, err = cmath.SafeAdd(market.TotalPool, vote.Amount)
	if err != nil {
		return nil, err
	}
	record := &rty.VoteAccount{
		Voter:     a.fromaddr,
		Market:    vote.Market,
		Direction: vote.Direction,
		Amount:    vote.Amount,
		Timestamp: a.blocktime,
		Nonce:     nonce,
	}

	kvc := dapp.NewKVCreator(a.db)
	kvc.AddList(receipt.KV)
	kvc.AddMsg(stateKey(voteAddr), record)
	kvc.AddMsg(stateKey(vote.Market), market)
	voteLog := &rty.ReceiptVote{
		Addr:        voteAddr,
		Vote:        record,
		Escrow:      escrow,
		HeightIndex: dapp.HeightIndexStr(a.height, int64(a.index)),
	}
	logs := append(receipt.Logs, &types.ReceiptLog{Ty: rty.TyLogReferendumVote, Log: types.Encode(voteLog)})
	return &types.Receipt{Ty: types.ExecOk, KV: kvc.KVList(), Logs: logs}, nil
}
