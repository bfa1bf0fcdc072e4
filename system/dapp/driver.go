// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 系统基础dapp包
package dapp

//package none execer for unknow execer
//all none transaction exec ok, execept nofee
//nofee transaction will not pack into block

import (
	"reflect"

	"github.com/33cn/referendum/account"
	"github.com/33cn/referendum/common/address"
	dbm "github.com/33cn/referendum/common/db"
	"github.com/33cn/referendum/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动接口
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	SetCoinsAccount(*account.DB)
	GetCoinsAccount() *account.DB
	GetName() string
	GetDriverName() string
	SetName(string)
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() ExecutorType
}

// DriverBase 执行器基类, 具体执行器内嵌它, 并且通过 SetChild 注册自身
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
	childValue   reflect.Value
	funcmap      map[string]reflect.Method
	ety          ExecutorType
}

// SetChild 设置子类, 按照方法名前缀收集 Exec_ ExecLocal_ Query_
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = ListMethod(e)
}

// SetExecutorType 设置action的编解码
func (d *DriverBase) SetExecutorType(e ExecutorType) {
	d.ety = e
}

// GetExecutorType 获取action的编解码
func (d *DriverBase) GetExecutorType() ExecutorType {
	return d.ety
}

// GetFuncMap 子类的方法表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

// SetEnv 设置区块高度和时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetName 执行器名称
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	return d.name
}

// GetDriverName 默认和名称相同
func (d *DriverBase) GetDriverName() string {
	return d.name
}

// GetActionName 交易的action名称, 解析失败返回 unknown
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	name, _, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

// CheckTx 交易执行前的检查, 默认只检查action能否解析
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if d.ety == nil {
		return nil
	}
	_, _, err := d.ety.DecodePayloadValue(tx)
	return err
}

// Exec 调用子类的 Exec_<ActionName>
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrExecPanic
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := "Exec_" + name
	method, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	r1, err := splitReturn(valueret)
	if err != nil {
		return nil, err
	}
	if r1 == nil {
		return nil, nil
	}
	receipt, ok = r1.(*types.Receipt)
	if !ok {
		return nil, ErrMethodReturnType
	}
	return receipt, nil
}

// ExecLocal 调用子类的 ExecLocal_<ActionName>, 没有实现时返回空集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	set = &types.LocalDBSet{}
	if d.ety == nil {
		return set, nil
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call localexec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrExecPanic
			set = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.funcmap["ExecLocal_"+name]
	if !ok {
		return set, nil
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	r1, err := splitReturn(valueret)
	if err != nil {
		return nil, err
	}
	if r1 == nil {
		return set, nil
	}
	lset, ok := r1.(*types.LocalDBSet)
	if !ok {
		return nil, ErrMethodReturnType
	}
	set.KV = append(set.KV, lset.KV...)
	return set, nil
}

// CheckAddress 执行器地址或者普通地址
func CheckAddress(addr string) error {
	if IsDriverAddress(addr) {
		return nil
	}
	return address.CheckAddress(addr)
}

// SetStateDB 设置状态数据库, 币账户也指向它
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount != nil {
		d.coinsaccount.SetDB(db)
	}
}

// GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB 本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// SetCoinsAccount 原生币账户
func (d *DriverBase) SetCoinsAccount(acc *account.DB) {
	d.coinsaccount = acc
	if d.statedb != nil {
		acc.SetDB(d.statedb)
	}
}

// GetCoinsAccount 原生币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}
