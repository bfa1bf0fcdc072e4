// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands referendum 命令行
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/33cn/referendum/client"
	commandtypes "github.com/33cn/referendum/system/dapp/commands/types"
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ReferendumCmd referendum 命令
func ReferendumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referendum",
		Short: "Binary outcome prediction market",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		VaultCmd(),
		MarketCmd(),
		VoteCmd(),
	)
	return cmd
}

// VaultCmd vault 命令
func VaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Global vault",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitVaultCmd(),
		ShowVaultCmd(),
	)
	return cmd
}

// MarketCmd 市场命令
func MarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Create, vote on and settle markets",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateMarketCmd(),
		VoteMarketCmd(),
		SettleMarketCmd(),
		ShowMarketCmd(),
		ListMarketCmd(),
	)
	return cmd
}

// VoteCmd 投票查询命令
func VoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Query votes",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		ShowVoteCmd(),
		ListVoteCmd(),
	)
	return cmd
}

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "sender private key (hex)")
	cmd.MarkFlagRequired("key")
}

// sendTx 读取私钥, 签名并执行交易
func sendTx(cmd *cobra.Command, tx *types.Transaction) {
	priv, err := commandtypes.GetPrivKey(cmd, "key")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		return c.SignAndSend(tx, priv)
	})
}

// InitVaultCmd 初始化 vault, 发送方成为 authority
func InitVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the vault, the sender becomes the authority",
		Run:   initVault,
	}
	addKeyFlag(cmd)
	return cmd
}

func initVault(cmd *cobra.Command, args []string) {
	sendTx(cmd, rty.CreateInitVaultTx(0, 0))
}

// ShowVaultCmd 查询 vault
func ShowVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the vault",
		Run:   showVault,
	}
	return cmd
}

func showVault(cmd *cobra.Command, args []string) {
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		return c.Query(rty.ReferendumX, rty.FuncNameGetVault, &types.ReqNil{})
	})
}

// CreateMarketCmd 创建市场
func CreateMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a market (authority only)",
		Run:   createMarket,
	}
	addCreateMarketFlags(cmd)
	return cmd
}

func addCreateMarketFlags(cmd *cobra.Command) {
	addKeyFlag(cmd)
	cmd.Flags().StringP("id", "i", "", "market id, default a random uuid")
	cmd.Flags().StringP("question", "q", "", "market question")
	cmd.MarkFlagRequired("question")
	cmd.Flags().StringP("desc", "d", "", "market description")
	cmd.Flags().Int64P("end", "e", 0, "voting deadline, unix seconds")
	cmd.Flags().Duration("duration", 0, "voting deadline from now, e.g. 24h")
}

type createMarketResult struct {
	*client.TxReply
	Market   string `json:"market"`
	MarketID string `json:"marketId"`
}

func createMarket(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	question, _ := cmd.Flags().GetString("question")
	desc, _ := cmd.Flags().GetString("desc")
	if id == "" {
		id = uuid.New().String()
	}
	end, err := commandtypes.GetEndTimestamp(cmd, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, err := commandtypes.GetPrivKey(cmd, "key")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	create := &rty.ReferendumCreateMarket{
		MarketId:     id,
		Question:     question,
		Description:  desc,
		EndTimestamp: end,
	}
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		reply, err := c.SignAndSend(rty.CreateMarketTx(create, 0, 0), priv)
		if err != nil {
			return nil, err
		}
		addr, _, err := rty.MarketAddress(id)
		if err != nil {
			return nil, err
		}
		return &createMarketResult{TxReply: reply, Market: addr, MarketID: id}, nil
	})
}

// VoteMarketCmd 投票
func VoteMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Vote on a market, the amount goes to the market escrow",
		Run:   voteMarket,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "market address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("side", "s", "", "yes or no")
	cmd.MarkFlagRequired("side")
	cmd.Flags().StringP("amount", "m", "", "vote amount, e.g. 1.5")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func voteMarket(cmd *cobra.Command, args []string) {
	market, _ := cmd.Flags().GetString("addr")
	side, _ := cmd.Flags().GetString("side")
	direction, err := rty.ParseDirection(side)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	vote := &rty.ReferendumVote{Market: market, Direction: direction, Amount: amount}
	sendTx(cmd, rty.CreateVoteTx(vote, 0, 0))
}

// SettleMarketCmd 结算
func SettleMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Settle a market (authority only)",
		Run:   settleMarket,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "market address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("outcome", "o", "", "yes or no")
	cmd.MarkFlagRequired("outcome")
	return cmd
}

func settleMarket(cmd *cobra.Command, args []string) {
	market, _ := cmd.Flags().GetString("addr")
	outcome, _ := cmd.Flags().GetString("outcome")
	o, err := rty.ParseOutcome(outcome)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	sendTx(cmd, rty.CreateSettleTx(&rty.ReferendumSettle{Market: market, Outcome: o}, 0, 0))
}

// ShowMarketCmd 查询市场和托管账户
func ShowMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a market by id or address",
		Run:   showMarket,
	}
	cmd.Flags().StringP("id", "i", "", "market id")
	cmd.Flags().StringP("addr", "a", "", "market address")
	cmd.Flags().BoolP("escrow", "e", false, "show the escrow account instead")
	return cmd
}

func showMarket(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	addr, _ := cmd.Flags().GetString("addr")
	escrow, _ := cmd.Flags().GetBool("escrow")
	req := &rty.ReqMarket{MarketId: id, Addr: addr}
	funcName := rty.FuncNameGetMarket
	if escrow {
		funcName = rty.FuncNameGetEscrow
	}
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		return c.Query(rty.ReferendumX, funcName, req)
	})
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("primary", "p", "", "start after this key, from the last page")
	cmd.Flags().Int32P("count", "c", 20, "max items, 0 means all")
	cmd.Flags().Int32P("direction", "d", 1, "1 ascending, 0 descending")
}

// ListMarketCmd 按结果列出市场
func ListMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List markets by outcome",
		Run:   listMarket,
	}
	cmd.Flags().StringP("outcome", "o", "pending", "pending, yes or no")
	addListFlags(cmd)
	return cmd
}

func listMarket(cmd *cobra.Command, args []string) {
	outcome, _ := cmd.Flags().GetString("outcome")
	primary, _ := cmd.Flags().GetString("primary")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	o, err := rty.ParseOutcome(outcome)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	req := &rty.ReqMarketList{Outcome: o, PrimaryKey: primary, Count: count, Direction: direction}
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		return c.Query(rty.ReferendumX, rty.FuncNameListMarkets, req)
	})
}

// ShowVoteCmd 查询投票
func ShowVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the vote of a voter on a market",
		Run:   showVote,
	}
	cmd.Flags().StringP("addr", "a", "", "market address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("voter", "v", "", "voter address")
	cmd.MarkFlagRequired("voter")
	return cmd
}

func showVote(cmd *cobra.Command, args []string) {
	market, _ := cmd.Flags().GetString("addr")
	voter, _ := cmd.Flags().GetString("voter")
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		return c.Query(rty.ReferendumX, rty.FuncNameGetVote, &rty.ReqVote{Market: market, Voter: voter})
	})
}

// ListVoteCmd 列出投票者或者市场的投票
func ListVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List votes of a voter or of a market",
		Run:   listVote,
	}
	cmd.Flags().StringP("voter", "v", "", "voter address")
	cmd.Flags().StringP("addr", "a", "", "market address")
	addListFlags(cmd)
	return cmd
}

func listVote(cmd *cobra.Command, args []string) {
	voter, _ := cmd.Flags().GetString("voter")
	market, _ := cmd.Flags().GetString("addr")
	primary, _ := cmd.Flags().GetString("primary")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &rty.ReqVoteList{Voter: voter, Market: market, PrimaryKey: primary, Count: count, Direction: direction}
	funcName := rty.FuncNameListVotesByVoter
	switch {
	case voter != "" && market != "":
		fmt.Fprintln(os.Stderr, "only one of --voter and --addr")
		return
	case voter == "" && market == "":
		fmt.Fprintln(os.Stderr, "one of --voter and --addr is required")
		return
	case market != "":
		funcName = rty.FuncNameListVotesByMarket
	}
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		return c.Query(rty.ReferendumX, funcName, req)
	})
}
