// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client 命令行使用的本地客户端
// 直接打开配置中的状态数据库和本地数据库, 每个写命令是一个只包含一笔交易的区块
package client

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/33cn/referendum/common"
	"github.com/33cn/referendum/common/config"
	"github.com/33cn/referendum/common/log"
	"github.com/33cn/referendum/executor"
	"github.com/33cn/referendum/types"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var clog = log.New("module", "client")

// Client 本地客户端
type Client struct {
	exec *executor.Executor
	cfg  *types.Config
}

// TxReply 交易的执行结果
type TxReply struct {
	Hash    string             `json:"hash"`
	Height  int64              `json:"height"`
	Index   int32              `json:"index"`
	Receipt *types.ReceiptData `json:"receipt"`
	Err     string             `json:"err,omitempty"`
}

// New 使用已经加载的配置打开数据库
func New(cfg *types.Config) (*Client, error) {
	exec, err := executor.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{exec: exec, cfg: exec.Config()}, nil
}

// Open 读取配置文件并打开数据库, path 为空时使用默认的内存数据库
func Open(path string) (*Client, error) {
	cfg, err := config.Init(path)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)
	return New(cfg)
}

// Close 关闭数据库
func (c *Client) Close() {
	c.exec.Close()
}

// Config 配置
func (c *Client) Config() *types.Config {
	return c.cfg
}

// LastHeader 最后一个区块头, 还没有区块时返回 ErrNotFound
func (c *Client) LastHeader() (*types.Header, error) {
	header := c.exec.LastHeader()
	if header == nil {
		return nil, types.ErrNotFound
	}
	return header, nil
}

// SendTx 把交易打包成新区块执行
// 交易本身执行失败时区块仍然写入, 错误在 TxReply.Err 中
func (c *Client) SendTx(tx *types.Transaction) (*TxReply, error) {
	blocktime := time.Now().Unix()
	if last := c.exec.LastHeader(); last != nil && last.BlockTime > blocktime {
		blocktime = last.BlockTime
	}
	result, err := c.exec.ExecBlock(c.exec.NewBlock(blocktime, tx))
	if err != nil {
		return nil, errors.Wrap(err, "exec block")
	}
	reply := &TxReply{
		Hash:    common.ToHex(tx.Hash()),
		Height:  result.Header.Height,
		Index:   0,
		Receipt: result.Receipts[0],
	}
	if result.Errs[0] != nil {
		reply.Err = result.Errs[0].Error()
		clog.Debug("SendTx", "hash", reply.Hash, "err", reply.Err)
	}
	return reply, nil
}

// SignAndSend 使用最低手续费和随机 nonce 签名后发送
func (c *Client) SignAndSend(tx *types.Transaction, priv *btcec.PrivateKey) (*TxReply, error) {
	tx.Fee = c.cfg.Exec.MinFee
	tx.Nonce = rand.Int63()
	tx.Sign(priv)
	return c.SendTx(tx)
}

// Query 执行器查询
func (c *Client) Query(driver, funcName string, param types.Message) (types.Message, error) {
	return c.exec.Query(driver, funcName, param)
}

// GetBalance 原生币余额
func (c *Client) GetBalance(addr string) (*types.Account, error) {
	return c.exec.GetBalance(addr)
}

// GetTx 交易的执行结果
func (c *Client) GetTx(hash string) (*types.TxResult, error) {
	b, err := common.FromHex(hash)
	if err != nil {
		return nil, err
	}
	return c.exec.GetTx(b)
}

// Callback 命令的执行函数, 返回的结果以json格式输出
type Callback func(c *Client) (interface{}, error)

// Run 按 --conf 打开客户端, 执行 cb 并输出结果, 出错时输出到 stderr
func Run(cmd *cobra.Command, cb Callback) {
	conf, _ := cmd.Flags().GetString("conf")
	c, err := Open(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer c.Close()
	result, err := cb(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	data, err := Marshal(result)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// Marshal proto 消息使用 jsonpb 输出默认值, 其他类型使用 encoding/json
func Marshal(v interface{}) ([]byte, error) {
	if msg, ok := v.(types.Message); ok {
		return types.PBToJSON(msg)
	}
	return json.MarshalIndent(v, "", "    ")
}
