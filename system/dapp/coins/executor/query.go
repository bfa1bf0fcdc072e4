// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	drivers "github.com/33cn/referendum/system/dapp"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
)

// Query_GetAddrReciver 地址累计收到的金额
func (c *Coins) Query_GetAddrReciver(in *types.ReqString) (types.Message, error) {
	amount, err := getAddrReciver(c.GetLocalDB(), in.Data)
	if err != nil {
		return nil, err
	}
	return &cty.AddrReciver{Addr: in.Data, Amount: amount}, nil
}

// Query_GetTxsByAddr 地址相关的交易, 按高度排序
func (c *Coins) Query_GetTxsByAddr(in *cty.ReqAddrTxs) (types.Message, error) {
	var key []byte
	if in.PrimaryKey != "" {
		key = calcAddrTxKey(in.Addr, in.PrimaryKey)
	}
	values, err := c.GetLocalDB().List(calcAddrTxPrefix(in.Addr), key, in.Count, in.Direction)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	var reply cty.AddrTxInfos
	for _, value := range values {
		var info cty.AddrTxInfo
		if err := types.Decode(value, &info); err != nil {
			return nil, err
		}
		reply.TxInfos = append(reply.TxInfos, &info)
	}
	return &reply, nil
}

// Query_GetBalance 状态数据库中的余额
func (c *Coins) Query_GetBalance(in *types.ReqBalance) (types.Message, error) {
	for _, addr := range in.Addresses {
		if err := drivers.CheckAddress(addr); err != nil {
			return nil, types.ErrInvalidAddress
		}
	}
	return &types.Accounts{Acc: c.GetCoinsAccount().LoadAccounts(in.Addresses)}, nil
}
