// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
)

// ExecLocal_CreateMarket 按结果索引市场
func (r *Referendum) ExecLocal_CreateMarket(payload *rty.ReferendumCreateMarket, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != rty.TyLogReferendumCreateMarket {
			continue
		}
		var m rty.ReceiptMarket
		if err := types.Decode(item.Log, &m); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{Key: calcMarketOutcomeKey(m.Market.Outcome, m.Market.MarketId), Value: []byte(m.Addr)})
	}
	return set, nil
}

// ExecLocal_Settle 市场从 pending 索引移动到结算结果的索引
func (r *Referendum) ExecLocal_Settle(payload *rty.ReferendumSettle, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != rty.TyLogReferendumSettle {
			continue
		}
		var m rty.ReceiptMarket
		if err := types.Decode(item.Log, &m); err != nil {
			return nil, err
		}
		set.KV = append(set.KV,
			&types.KeyValue{Key: calcMarketOutcomeKey(m.PrevOutcome, m.Market.MarketId), Value: nil},
			&types.KeyValue{Key: calcMarketOutcomeKey(m.Market.Outcome, m.Market.MarketId), Value: []byte(m.Addr)},
		)
	}
	return set, nil
}

// ExecLocal_Vote 投票者和市场两个维度的投票索引
func (r *Referendum) ExecLocal_Vote(payload *rty.ReferendumVote, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != rty.TyLogReferendumVote {
			continue
		}
		var v rty.ReceiptVote
		if err := types.Decode(item.Log, &v); err != nil {
			return nil, err
		}
		value := types.Encode(&rty.VoteIndex{
			Addr:        v.Addr,
			Market:      v.Vote.Market,
			Voter:       v.Vote.Voter,
			HeightIndex: v.HeightIndex,
		})
		set.KV = append(set.KV,
			&types.KeyValue{Key: calcVoterKey(v.Vote.Voter, v.HeightIndex), Value: value},
			&types.KeyValue{Key: calcMarketVoteKey(v.Vote.Market, v.HeightIndex), Value: value},
		)
	}
	return set, nil
}
