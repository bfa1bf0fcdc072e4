// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"

	"github.com/33cn/referendum/types"
)

// ExecutorAction 执行器的 action 消息, 子消息放在 oneof value 中
type ExecutorAction interface {
	types.Message
	GetTy() int32
}

// ExecutorType action 的编解码
type ExecutorType interface {
	GetName() string
	GetPayload() types.Message
	GetTypeMap() map[string]int32
	DecodePayload(tx *types.Transaction) (ExecutorAction, error)
	DecodePayloadValue(tx *types.Transaction) (string, reflect.Value, error)
	CreateTx(action ExecutorAction, fee uint64, nonce int64) (*types.Transaction, error)
}

// ExecTypeBase 通用实现, 具体执行器只需要提供 payload 类型和 action 名称表
type ExecTypeBase struct {
	name        string
	payloadTy   reflect.Type
	typeMap     map[string]int32
	rtypeMap    map[int32]string
	actionFuncs map[string]reflect.Method
}

// NewExecType payload 为 action 消息的零值指针
func NewExecType(name string, payload ExecutorAction, typeMap map[string]int32) *ExecTypeBase {
	rtypeMap := make(map[int32]string, len(typeMap))
	for k, v := range typeMap {
		rtypeMap[v] = k
	}
	return &ExecTypeBase{
		name:        name,
		payloadTy:   reflect.TypeOf(payload).Elem(),
		typeMap:     typeMap,
		rtypeMap:    rtypeMap,
		actionFuncs: ListActionMethod(payload),
	}
}

// GetName 执行器名称
func (base *ExecTypeBase) GetName() string {
	return base.name
}

// GetPayload 新建一个空的 action
func (base *ExecTypeBase) GetPayload() types.Message {
	return reflect.New(base.payloadTy).Interface().(types.Message)
}

// GetTypeMap action名称 -> Ty
func (base *ExecTypeBase) GetTypeMap() map[string]int32 {
	return base.typeMap
}

// DecodePayload 解析交易的 payload
func (base *ExecTypeBase) DecodePayload(tx *types.Transaction) (ExecutorAction, error) {
	payload := base.GetPayload()
	if err := types.Decode(tx.Payload, payload); err != nil {
		return nil, err
	}
	action, ok := payload.(ExecutorAction)
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	return action, nil
}

// DecodePayloadValue 返回 action 名称以及对应的子消息
// 名称取自 oneof 的包装类型, 必须和 Ty 一致
func (base *ExecTypeBase) DecodePayloadValue(tx *types.Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", reflect.Value{}, err
	}
	name, ty, value := GetActionValue(action, base.actionFuncs)
	if name == "" || IsNilVal(value) {
		return "", reflect.Value{}, types.ErrActionNotSupport
	}
	if expect, ok := base.typeMap[name]; !ok || expect != ty {
		return "", reflect.Value{}, types.ErrActionNotSupport
	}
	return name, value, nil
}

// CreateTx 构造交易, Ty 必须在名称表中
func (base *ExecTypeBase) CreateTx(action ExecutorAction, fee uint64, nonce int64) (*types.Transaction, error) {
	if _, ok := base.rtypeMap[action.GetTy()]; !ok {
		return nil, types.ErrActionNotSupport
	}
	return types.CreateTx(base.name, action, fee, nonce), nil
}
