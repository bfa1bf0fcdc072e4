// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"math"
	"strings"
	"testing"

	"github.com/33cn/referendum/common/address"
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
	"github.com/33cn/referendum/util"
	"github.com/33cn/referendum/util/testnode"
	"github.com/btcsuite/btcd/btcec/v2"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T, cfg *types.Config) *testnode.Mock {
	mock := testnode.New(cfg)
	t.Cleanup(mock.Close)
	return mock
}

func initVault(mock *testnode.Mock, priv *btcec.PrivateKey) error {
	_, err := mock.ExecTx(mock.SignTx(rty.CreateInitVaultTx(0, 0), priv))
	return err
}

func createMarket(mock *testnode.Mock, priv *btcec.PrivateKey, create *rty.ReferendumCreateMarket) error {
	_, err := mock.ExecTx(mock.SignTx(rty.CreateMarketTx(create, 0, 0), priv))
	return err
}

// newMarket 创建一个问题为 "Q?" 的市场, 返回市场地址
func newMarket(t *testing.T, mock *testnode.Mock, priv *btcec.PrivateKey, id string, end int64) string {
	require.NoError(t, createMarket(mock, priv, &rty.ReferendumCreateMarket{MarketId: id, Question: "Q?", EndTimestamp: end}))
	addr, _, err := rty.MarketAddress(id)
	require.NoError(t, err)
	return addr
}

func vote(mock *testnode.Mock, priv *btcec.PrivateKey, market string, direction int32, amount uint64) error {
	v := &rty.ReferendumVote{Market: market, Direction: direction, Amount: amount}
	_, err := mock.ExecTx(mock.SignTx(rty.CreateVoteTx(v, 0, 0), priv))
	return err
}

func settle(mock *testnode.Mock, priv *btcec.PrivateKey, market string, outcome int32) error {
	s := &rty.ReferendumSettle{Market: market, Outcome: outcome}
	_, err := mock.ExecTx(mock.SignTx(rty.CreateSettleTx(s, 0, 0), priv))
	return err
}

func getMarket(t *testing.T, mock *testnode.Mock, addr string) *rty.MarketAccount {
	reply, err := mock.Query(rty.ReferendumX, rty.FuncNameGetMarket, &rty.ReqMarket{Addr: addr})
	require.NoError(t, err)
	return reply.(*rty.ReplyMarket).Market
}

func getEscrow(t *testing.T, mock *testnode.Mock, addr string) *rty.ReplyEscrow {
	reply, err := mock.Query(rty.ReferendumX, rty.FuncNameGetEscrow, &rty.ReqMarket{Addr: addr})
	require.NoError(t, err)
	return reply.(*rty.ReplyEscrow)
}

func TestReferendumScenario(t *testing.T) {
	mock := newMock(t, nil)
	authority, v1, v2, v3 := mock.GetKey(0), mock.GetKey(1), mock.GetKey(2), mock.GetKey(3)
	genesisAmount := mock.GetCfg().Coins.GenesisAmount

	require.NoError(t, initVault(mock, authority))
	end := mock.BlockTime() + 3600
	market := newMarket(t, mock, authority, "m1", end)

	require.NoError(t, vote(mock, v1, market, rty.DirectionYes, 100))
	m := getMarket(t, mock, market)
	assert.Equal(t, uint64(1), m.YesCount)
	assert.Equal(t, uint64(0), m.NoCount)
	assert.Equal(t, uint64(100), m.TotalPool)

	//同一个地址第二次投票失败, 转账也回滚
	assert.Equal(t, types.ErrAlreadyExists, vote(mock, v1, market, rty.DirectionNo, 10))
	m = getMarket(t, mock, market)
	assert.Equal(t, uint64(1), m.YesCount)
	assert.Equal(t, uint64(0), m.NoCount)
	assert.Equal(t, uint64(100), m.TotalPool)
	assert.Equal(t, genesisAmount-100, mock.GetBalance(mock.GetAddr(1)))

	require.NoError(t, vote(mock, v2, market, rty.DirectionNo, 50))
	m = getMarket(t, mock, market)
	assert.Equal(t, uint64(1), m.NoCount)
	assert.Equal(t, uint64(150), m.TotalPool)
	escrow := getEscrow(t, mock, market)
	assert.Equal(t, uint64(150), escrow.Balance)
	assert.Equal(t, escrow.Balance, escrow.TotalPool)

	require.NoError(t, settle(mock, authority, market, rty.OutcomeYes))
	assert.Equal(t, rty.OutcomeYes, getMarket(t, mock, market).Outcome)

	assert.Equal(t, rty.ErrMarketAlreadyResolved, settle(mock, authority, market, rty.OutcomeNo))
	assert.Equal(t, rty.OutcomeYes, getMarket(t, mock, market).Outcome)

	//结算之后不能再投票
	assert.Equal(t, rty.ErrMarketAlreadyResolved, vote(mock, v3, market, rty.DirectionYes, 10))
	m = getMarket(t, mock, market)
	assert.Equal(t, uint64(150), m.TotalPool)
	assert.Equal(t, uint64(150), getEscrow(t, mock, market).Balance)
	assert.Equal(t, genesisAmount, mock.GetBalance(mock.GetAddr(3)))

	reg := mock.GetExec().Metrics()
	assert.Equal(t, int64(2), gometrics.GetOrRegisterCounter("executor.referendum.Vote.ok", reg).Count())
	assert.Equal(t, int64(2), gometrics.GetOrRegisterCounter("executor.referendum.Vote.err", reg).Count())
}

func TestInitVault(t *testing.T) {
	mock := newMock(t, nil)
	_, err := mock.Query(rty.ReferendumX, rty.FuncNameGetVault, &types.ReqNil{})
	assert.Equal(t, rty.ErrVaultNotFound, err)

	require.NoError(t, initVault(mock, mock.GetKey(1)))
	reply, err := mock.Query(rty.ReferendumX, rty.FuncNameGetVault, &types.ReqNil{})
	require.NoError(t, err)
	vault := reply.(*rty.ReplyVault)
	assert.Equal(t, mock.GetAddr(1), vault.Vault.Authority)
	assert.Equal(t, uint64(0), vault.Vault.TotalMarkets)
	addr, nonce, err := rty.VaultAddress()
	require.NoError(t, err)
	assert.Equal(t, addr, vault.Addr)
	assert.Equal(t, nonce, vault.Vault.Nonce)

	//第二次初始化失败, 不覆盖 authority
	assert.Equal(t, types.ErrAlreadyExists, initVault(mock, mock.GetKey(0)))
	reply, err = mock.Query(rty.ReferendumX, rty.FuncNameGetVault, &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, mock.GetAddr(1), reply.(*rty.ReplyVault).Vault.Authority)
}

func TestCreateMarket(t *testing.T) {
	mock := newMock(t, nil)
	authority := mock.GetKey(0)
	end := mock.BlockTime() + 3600

	create := &rty.ReferendumCreateMarket{MarketId: "m1", Question: "Q?", EndTimestamp: end}
	assert.Equal(t, rty.ErrVaultNotFound, createMarket(mock, authority, create))
	require.NoError(t, initVault(mock, authority))
	assert.Equal(t, rty.ErrUnauthorized, createMarket(mock, mock.GetKey(1), create))

	//按顺序检查: 问题, 描述, ID, 截止时间
	bad := &rty.ReferendumCreateMarket{
		MarketId:     strings.Repeat("i", 65),
		Question:     strings.Repeat("q", 201),
		Description:  strings.Repeat("d", 501),
		EndTimestamp: 1,
	}
	assert.Equal(t, rty.ErrQuestionTooLong, createMarket(mock, authority, bad))
	bad.Question = "Q?"
	assert.Equal(t, rty.ErrDescriptionTooLong, createMarket(mock, authority, bad))
	bad.Description = ""
	assert.Equal(t, rty.ErrMarketIDTooLong, createMarket(mock, authority, bad))
	bad.MarketId = "m2"
	assert.Equal(t, rty.ErrEndDateInPast, createMarket(mock, authority, bad))
	//截止时间必须严格大于区块时间
	bad.EndTimestamp = mock.BlockTime() + 1
	assert.Equal(t, rty.ErrEndDateInPast, createMarket(mock, authority, bad))

	//201 个字符的问题不会分配市场
	long := &rty.ReferendumCreateMarket{MarketId: "long", Question: strings.Repeat("q", 201), EndTimestamp: end}
	assert.Equal(t, rty.ErrQuestionTooLong, createMarket(mock, authority, long))
	_, err := mock.Query(rty.ReferendumX, rty.FuncNameGetMarket, &rty.ReqMarket{MarketId: "long"})
	assert.Equal(t, rty.ErrMarketNotFound, err)

	//边界长度可以创建
	max := &rty.ReferendumCreateMarket{
		MarketId:     strings.Repeat("i", 64),
		Question:     strings.Repeat("q", 200),
		Description:  strings.Repeat("d", 500),
		EndTimestamp: end,
	}
	require.NoError(t, createMarket(mock, authority, max))
	reply, err := mock.Query(rty.ReferendumX, rty.FuncNameGetMarket, &rty.ReqMarket{MarketId: max.MarketId})
	require.NoError(t, err)
	m := reply.(*rty.ReplyMarket).Market
	assert.Equal(t, max.Question, m.Question)
	assert.Equal(t, max.Description, m.Description)
	assert.Equal(t, mock.GetAddr(0), m.Authority)
	assert.Equal(t, end, m.EndTimestamp)
	assert.Equal(t, mock.BlockTime(), m.CreatedAt)
	assert.Equal(t, rty.OutcomePending, m.Outcome)
	assert.Equal(t, uint64(0), m.YesCount)
	assert.Equal(t, uint64(0), m.NoCount)
	assert.Equal(t, uint64(0), m.TotalPool)

	//重复的 MarketId
	assert.Equal(t, types.ErrAlreadyExists, createMarket(mock, authority, max))

	newMarket(t, mock, authority, "", end)
	reply, err = mock.Query(rty.ReferendumX, rty.FuncNameGetVault, &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), reply.(*rty.ReplyVault).Vault.TotalMarkets)
}

func TestVote(t *testing.T) {
	mock := newMock(t, nil)
	authority, voter := mock.GetKey(0), mock.GetKey(1)
	require.NoError(t, initVault(mock, authority))
	end := mock.BlockTime() + 100
	market := newMarket(t, mock, authority, "m1", end)

	nomarket, _, err := rty.MarketAddress("nosuchmarket")
	require.NoError(t, err)
	assert.Equal(t, rty.ErrMarketNotFound, vote(mock, voter, nomarket, rty.DirectionYes, 1))
	vault, _, err := rty.VaultAddress()
	require.NoError(t, err)
	assert.Equal(t, address.ErrInvalidSeeds, vote(mock, voter, vault, rty.DirectionYes, 1))

	assert.Equal(t, rty.ErrInvalidDirection, vote(mock, voter, market, 2, 1))
	assert.Equal(t, rty.ErrZeroAmount, vote(mock, voter, market, rty.DirectionYes, 0))

	//余额不足时不分配投票记录
	_, poor := mock.Genaddress()
	assert.Equal(t, types.ErrNoBalance, vote(mock, poor, market, rty.DirectionYes, 1))
	_, err = mock.Query(rty.ReferendumX, rty.FuncNameGetVote, &rty.ReqVote{Market: market, Voter: util.PrivkeyAddr(poor)})
	assert.Equal(t, types.ErrNotFound, err)

	require.NoError(t, vote(mock, voter, market, rty.DirectionNo, 30))
	reply, err := mock.Query(rty.ReferendumX, rty.FuncNameGetVote, &rty.ReqVote{Market: market, Voter: mock.GetAddr(1)})
	require.NoError(t, err)
	v := reply.(*rty.ReplyVote).Vote
	assert.Equal(t, mock.GetAddr(1), v.Voter)
	assert.Equal(t, market, v.Market)
	assert.Equal(t, rty.DirectionNo, v.Direction)
	assert.Equal(t, uint64(30), v.Amount)
	assert.Equal(t, mock.BlockTime(), v.Timestamp)

	//区块时间等于截止时间时已经过期
	mock.Advance(end - mock.BlockTime() - 1)
	assert.Equal(t, rty.ErrMarketExpired, vote(mock, mock.GetKey(2), market, rty.DirectionYes, 1))
	assert.Equal(t, mock.BlockTime(), end)
	m := getMarket(t, mock, market)
	assert.Equal(t, uint64(0), m.YesCount)
	assert.Equal(t, uint64(1), m.NoCount)
	assert.Equal(t, uint64(30), m.TotalPool)
	assert.Equal(t, uint64(30), getEscrow(t, mock, market).Balance)
}

func TestVoteOverflow(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Coins.GenesisAmount = math.MaxUint64
	mock := newMock(t, cfg)
	require.NoError(t, initVault(mock, mock.GetKey(0)))
	market := newMarket(t, mock, mock.GetKey(0), "m1", mock.BlockTime()+100)

	require.NoError(t, vote(mock, mock.GetKey(1), market, rty.DirectionYes, math.MaxUint64))
	assert.Equal(t, types.ErrOverflow, vote(mock, mock.GetKey(2), market, rty.DirectionYes, 1))
	m := getMarket(t, mock, market)
	assert.Equal(t, uint64(1), m.YesCount)
	assert.Equal(t, uint64(math.MaxUint64), m.TotalPool)
	assert.Equal(t, uint64(math.MaxUint64), mock.GetBalance(mock.GetAddr(2)))
}

func TestNoSignature(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Exec.CheckSign = false
	mock := newMock(t, cfg)
	require.NoError(t, initVault(mock, mock.GetKey(0)))

	tx := rty.CreateInitVaultTx(0, 1)
	_, err := mock.ExecTx(tx)
	assert.Equal(t, types.ErrNoSignature, err)
}

func TestSettle(t *testing.T) {
	mock := newMock(t, nil)
	authority := mock.GetKey(0)
	require.NoError(t, initVault(mock, authority))
	end := mock.BlockTime() + 3600
	market := newMarket(t, mock, authority, "m1", end)

	assert.Equal(t, rty.ErrUnauthorized, settle(mock, mock.GetKey(1), market, rty.OutcomeYes))
	assert.Equal(t, rty.ErrInvalidOutcome, settle(mock, authority, market, rty.OutcomePending))
	assert.Equal(t, rty.ErrInvalidOutcome, settle(mock, authority, market, 3))
	nomarket, _, err := rty.MarketAddress("nosuchmarket")
	require.NoError(t, err)
	assert.Equal(t, rty.ErrMarketNotFound, settle(mock, authority, nomarket, rty.OutcomeYes))
	assert.Equal(t, rty.OutcomePending, getMarket(t, mock, market).Outcome)

	//截止时间之前也可以结算
	require.NoError(t, settle(mock, authority, market, rty.OutcomeNo))
	assert.True(t, mock.BlockTime() < end)
	assert.Equal(t, rty.OutcomeNo, getMarket(t, mock, market).Outcome)
	assert.Equal(t, rty.ErrMarketAlreadyResolved, settle(mock, authority, market, rty.OutcomeNo))
}

func TestListMarkets(t *testing.T) {
	mock := newMock(t, nil)
	authority := mock.GetKey(0)
	require.NoError(t, initVault(mock, authority))
	_, err := mock.Query(rty.ReferendumX, rty.FuncNameListMarkets, &rty.ReqMarketList{Outcome: rty.OutcomePending})
	assert.Equal(t, types.ErrNotFound, err)

	end := mock.BlockTime() + 3600
	a := newMarket(t, mock, authority, "a", end)
	b := newMarket(t, mock, authority, "b", end)
	c := newMarket(t, mock, authority, "c", end)
	require.NoError(t, settle(mock, authority, b, rty.OutcomeYes))

	list := func(outcome int32, primary string, count, direction int32) []*rty.ReplyMarket {
		req := &rty.ReqMarketList{Outcome: outcome, PrimaryKey: primary, Count: count, Direction: direction}
		reply, err := mock.Query(rty.ReferendumX, rty.FuncNameListMarkets, req)
		require.NoError(t, err)
		return reply.(*rty.ReplyMarketList).Markets
	}
	pending := list(rty.OutcomePending, "", 0, 1)
	require.Len(t, pending, 2)
	assert.Equal(t, a, pending[0].Addr)
	assert.Equal(t, c, pending[1].Addr)

	pending = list(rty.OutcomePending, "", 1, 0)
	require.Len(t, pending, 1)
	assert.Equal(t, "c", pending[0].Market.MarketId)
	pending = list(rty.OutcomePending, "c", 1, 0)
	require.Len(t, pending, 1)
	assert.Equal(t, "a", pending[0].Market.MarketId)

	yes := list(rty.OutcomeYes, "", 0, 1)
	require.Len(t, yes, 1)
	assert.Equal(t, b, yes[0].Addr)
	assert.Equal(t, rty.OutcomeYes, yes[0].Market.Outcome)

	_, err = mock.Query(rty.ReferendumX, rty.FuncNameListMarkets, &rty.ReqMarketList{Outcome: rty.OutcomeNo})
	assert.Equal(t, types.ErrNotFound, err)
	_, err = mock.Query(rty.ReferendumX, rty.FuncNameListMarkets, &rty.ReqMarketList{Outcome: 3})
	assert.Equal(t, rty.ErrInvalidOutcome, err)
}

func TestListVotes(t *testing.T) {
	mock := newMock(t, nil)
	authority := mock.GetKey(0)
	require.NoError(t, initVault(mock, authority))
	end := mock.BlockTime() + 3600
	m1 := newMarket(t, mock, authority, "m1", end)
	m2 := newMarket(t, mock, authority, "m2", end)

	require.NoError(t, vote(mock, mock.GetKey(1), m1, rty.DirectionYes, 10))
	require.NoError(t, vote(mock, mock.GetKey(1), m2, rty.DirectionNo, 20))
	require.NoError(t, vote(mock, mock.GetKey(2), m1, rty.DirectionNo, 30))
	//失败的投票不建立索引
	assert.Equal(t, types.ErrAlreadyExists, vote(mock, mock.GetKey(2), m1, rty.DirectionNo, 30))

	reply, err := mock.Query(rty.ReferendumX, rty.FuncNameListVotesByVoter, &rty.ReqVoteList{Voter: mock.GetAddr(1), Direction: 1})
	require.NoError(t, err)
	votes := reply.(*rty.ReplyVoteList).Votes
	require.Len(t, votes, 2)
	assert.Equal(t, m1, votes[0].Vote.Market)
	assert.Equal(t, m2, votes[1].Vote.Market)
	assert.Equal(t, uint64(20), votes[1].Vote.Amount)

	reply, err = mock.Query(rty.ReferendumX, rty.FuncNameListVotesByVoter, &rty.ReqVoteList{Voter: mock.GetAddr(1), PrimaryKey: votes[0].HeightIndex, Direction: 1})
	require.NoError(t, err)
	require.Len(t, reply.(*rty.ReplyVoteList).Votes, 1)
	assert.Equal(t, m2, reply.(*rty.ReplyVoteList).Votes[0].Vote.Market)

	reply, err = mock.Query(rty.ReferendumX, rty.FuncNameListVotesByMarket, &rty.ReqVoteList{Market: m1, Direction: 0})
	require.NoError(t, err)
	votes = reply.(*rty.ReplyVoteList).Votes
	require.Len(t, votes, 2)
	assert.Equal(t, mock.GetAddr(2), votes[0].Vote.Voter)
	assert.Equal(t, mock.GetAddr(1), votes[1].Vote.Voter)

	var pool uint64
	for _, v := range votes {
		pool += v.Vote.Amount
	}
	assert.Equal(t, getMarket(t, mock, m1).TotalPool, pool)
	assert.Equal(t, pool, getEscrow(t, mock, m1).Balance)

	_, err = mock.Query(rty.ReferendumX, rty.FuncNameListVotesByVoter, &rty.ReqVoteList{Voter: mock.GetAddr(3)})
	assert.Equal(t, types.ErrNotFound, err)
	_, err = mock.Query(rty.ReferendumX, rty.FuncNameListVotesByMarket, &rty.ReqVoteList{Market: m1, Direction: 2})
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestListSingleMarket(t *testing.T) {
	mock := newMock(t, nil)
	authority := mock.GetKey(0)
	require.NoError(t, initVault(mock, authority))

	create := &rty.ReferendumCreateMarket{MarketId: "m1", Question: "Q?", EndTimestamp: mock.BlockTime() + 3600}
	receipt, err := mock.ExecTx(mock.SignTx(rty.CreateMarketTx(create, 0, 0), authority))
	require.NoError(t, err)
	var tys []int32
	for _, l := range receipt.Logs {
		tys = append(tys, l.Ty)
	}
	assert.Equal(t, []int32{rty.TyLogReferendumCreateMarket, rty.TyLogReferendumVault}, tys)

	market, _, err := rty.MarketAddress("m1")
	require.NoError(t, err)
	reply, err := mock.Query(rty.ReferendumX, rty.FuncNameListMarkets, &rty.ReqMarketList{Outcome: rty.OutcomePending, Direction: 1})
	require.NoError(t, err)
	markets := reply.(*rty.ReplyMarketList).Markets
	require.Len(t, markets, 1)
	assert.Equal(t, market, markets[0].Addr)
	assert.Equal(t, "m1", markets[0].Market.MarketId)
}

func TestEscrowDirectTransfer(t *testing.T) {
	mock := newMock(t, nil)
	authority, voter := mock.GetKey(0), mock.GetKey(1)
	require.NoError(t, initVault(mock, authority))
	market := newMarket(t, mock, authority, "m1", mock.BlockTime()+3600)
	require.NoError(t, vote(mock, voter, market, rty.DirectionYes, 100))

	//直接转入托管地址的资金不计入 TotalPool
	escrow, _, err := rty.EscrowAddress(market)
	require.NoError(t, err)
	_, err = mock.ExecTx(mock.CreateCoinsTx(mock.GetKey(2), escrow, 7))
	require.NoError(t, err)
	reply := getEscrow(t, mock, market)
	assert.Equal(t, escrow, reply.Escrow)
	assert.Equal(t, uint64(107), reply.Balance)
	assert.Equal(t, uint64(100), reply.TotalPool)
	assert.Equal(t, uint64(100), getMarket(t, mock, market).TotalPool)
}
