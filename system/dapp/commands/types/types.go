// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult 账户余额, 金额为显示值
type AccountResult struct {
	Currency int32  `json:"currency,omitempty"`
	Balance  string `json:"balance"`
	Addr     string `json:"addr,omitempty"`
}

// KeyResult 新生成的账户
type KeyResult struct {
	Addr    string `json:"addr"`
	PrivKey string `json:"privkey"`
}

// TxDetailResult 交易的执行结果
type TxDetailResult struct {
	Hash      string  `json:"hash"`
	Execer    string  `json:"execer"`
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Fee       string  `json:"fee"`
	Height    int64   `json:"height"`
	Index     int32   `json:"index"`
	BlockTime int64   `json:"blocktime"`
	Ty        int32   `json:"ty"`
	LogTys    []int32 `json:"logTys,omitempty"`
}
