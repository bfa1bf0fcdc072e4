// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/referendum/common/db"
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
)

// Query_GetVault 全局 vault
func (r *Referendum) Query_GetVault(in *types.ReqNil) (types.Message, error) {
	vault, addr, err := loadVault(r.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &rty.ReplyVault{Addr: addr, Vault: vault}, nil
}

// marketAddr 地址优先, 否则由 MarketId 派生
func marketAddr(in *rty.ReqMarket) (string, error) {
	if in.Addr != "" {
		return in.Addr, nil
	}
	addr, _, err := rty.MarketAddress(in.MarketId)
	return addr, err
}

// Query_GetMarket 查询市场
func (r *Referendum) Query_GetMarket(in *rty.ReqMarket) (types.Message, error) {
	addr, err := marketAddr(in)
	if err != nil {
		return nil, err
	}
	market, err := loadMarket(r.GetStateDB(), addr)
	if err != nil {
		return nil, err
	}
	return &rty.ReplyMarket{Addr: addr, Market: market}, nil
}

// Query_GetVote 查询某个地址在某个市场的投票
func (r *Referendum) Query_GetVote(in *rty.ReqVote) (types.Message, error) {
	addr, _, err := rty.VoteAddress(in.Market, in.Voter)
	if err != nil {
		return nil, err
	}
	vote, err := loadVote(r.GetStateDB(), addr)
	if err != nil {
		return nil, err
	}
	return &rty.ReplyVote{Addr: addr, Vote: vote}, nil
}

// Query_GetEscrow 托管账户余额和市场资金池
func (r *Referendum) Query_GetEscrow(in *rty.ReqMarket) (types.Message, error) {
	addr, err := marketAddr(in)
	if err != nil {
		return nil, err
	}
	market, err := loadMarket(r.GetStateDB(), addr)
	if err != nil {
		return nil, err
	}
	escrow, _, err := rty.EscrowAddress(addr)
	if err != nil {
		return nil, err
	}
	acc := r.GetCoinsAccount().LoadAccount(escrow)
	return &rty.ReplyEscrow{Market: addr, Escrow: escrow, Balance: acc.Balance, TotalPool: market.TotalPool}, nil
}

// Query_ListMarkets 按结果列出市场, 按 MarketId 排序
func (r *Referendum) Query_ListMarkets(in *rty.ReqMarketList) (types.Message, error) {
	if in.Outcome < rty.OutcomePending || in.Outcome > rty.OutcomeNo {
		return nil, rty.ErrInvalidOutcome
	}
	if in.Direction != dbm.ListASC && in.Direction != dbm.ListDESC {
		return nil, types.ErrInvalidParam
	}
	var key []byte
	if in.PrimaryKey != "" {
		key = calcMarketOutcomeKey(in.Outcome, in.PrimaryKey)
	}
	values, err := r.GetLocalDB().List(calcMarketOutcomePrefix(in.Outcome), key, in.Count, in.Direction)
	if err != nil {
		return nil, err
	}
	var reply rty.ReplyMarketList
	for _, value := range values {
		addr := string(value)
		market, err := loadMarket(r.GetStateDB(), addr)
		if err != nil {
			rlog.Error("ListMarkets", "market", addr, "err", err)
			return nil, err
		}
		reply.Markets = append(reply.Markets, &rty.ReplyMarket{Addr: addr, Market: market})
	}
	return &reply, nil
}

// Query_ListVotesByVoter 某个地址的所有投票, 按区块顺序
func (r *Referendum) Query_ListVotesByVoter(in *rty.ReqVoteList) (types.Message, error) {
	var key []byte
	if in.PrimaryKey != "" {
		key = calcVoterKey(in.Voter, in.PrimaryKey)
	}
	return r.listVotes(calcVoterPrefix(in.Voter), key, in.Count, in.Direction)
}

// Query_ListVotesByMarket 某个市场的所有投票, 按区块顺序
func (r *Referendum) Query_ListVotesByMarket(in *rty.ReqVoteList) (types.Message, error) {
	var key []byte
	if in.PrimaryKey != "" {
		key = calcMarketVoteKey(in.Market, in.PrimaryKey)
	}
	return r.listVotes(calcMarketVotePrefix(in.Market), key, in.Count, in.Direction)
}

func (r *Referendum) listVotes(prefix, key []byte, count, direction int32) (types.Message, error) {
	if direction != dbm.ListASC && direction != dbm.ListDESC {
		return nil, types.ErrInvalidParam
	}
	values, err := r.GetLocalDB().List(prefix, key, count, direction)
	if err != nil {
		return nil, err
	}
	var reply rty.ReplyVoteList
	for _, value := range values {
		var index rty.VoteIndex
		if err := types.Decode(value, &index); err != nil {
			return nil, err
		}
		vote, err := loadVote(r.GetStateDB(), index.Addr)
		if err != nil {
			return nil, err
		}
		reply.Votes = append(reply.Votes, &rty.ReplyVote{Addr: index.Addr, Vote: vote, HeightIndex: index.HeightIndex})
	}
	return &reply, nil
}
