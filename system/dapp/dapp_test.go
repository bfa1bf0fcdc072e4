// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"testing"

	"github.com/33cn/referendum/common/address"
	"github.com/33cn/referendum/types"
	proto "github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tyEcho = 1
	tyFail = 2
	tyNone = 3
)

type echoAction struct {
	Value isEchoAction_Value `protobuf_oneof:"value"`
	Ty    int32              `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *echoAction) Reset()         { *m = echoAction{} }
func (m *echoAction) String() string { return proto.CompactTextString(m) }
func (*echoAction) ProtoMessage()    {}
func (m *echoAction) GetTy() int32   { return m.Ty }

type isEchoAction_Value interface {
	isEchoAction_Value()
}

type echoAction_Echo struct {
	Echo *types.ReqString `protobuf:"bytes,2,opt,name=echo,proto3,oneof"`
}

type echoAction_Fail struct {
	Fail *types.ReqString `protobuf:"bytes,3,opt,name=fail,proto3,oneof"`
}

type echoAction_None struct {
	None *types.ReqString `protobuf:"bytes,4,opt,name=none,proto3,oneof"`
}

func (*echoAction_Echo) isEchoAction_Value() {}
func (*echoAction_Fail) isEchoAction_Value() {}
func (*echoAction_None) isEchoAction_Value() {}

func (m *echoAction) GetValue() isEchoAction_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *echoAction) GetEcho() *types.ReqString {
	if x, ok := m.GetValue().(*echoAction_Echo); ok {
		return x.Echo
	}
	return nil
}

func (m *echoAction) GetFail() *types.ReqString {
	if x, ok := m.GetValue().(*echoAction_Fail); ok {
		return x.Fail
	}
	return nil
}

func (m *echoAction) GetNone() *types.ReqString {
	if x, ok := m.GetValue().(*echoAction_None); ok {
		return x.None
	}
	return nil
}

func (*echoAction) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*echoAction_Echo)(nil),
		(*echoAction_Fail)(nil),
		(*echoAction_None)(nil),
	}
}

var errFail = errors.New("errFail")

type echo struct {
	DriverBase
}

func newEcho() Driver {
	e := &echo{}
	e.SetChild(e)
	e.SetExecutorType(NewExecType("echo", &echoAction{}, map[string]int32{"Echo": tyEcho, "Fail": tyFail, "None": tyNone}))
	return e
}

func (e *echo) Exec_Echo(payload *types.ReqString, tx *types.Transaction, index int) (*types.Receipt, error) {
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: []byte("mavl-echo-" + payload.Data), Value: []byte(payload.Data)}}}, nil
}

func (e *echo) Exec_Fail(payload *types.ReqString, tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, errFail
}

func (e *echo) ExecLocal_Echo(payload *types.ReqString, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-echo-" + payload.Data), Value: []byte{1}}}}, nil
}

func (e *echo) Query_Echo(in *types.ReqString) (types.Message, error) {
	return &types.ReplyString{Data: in.Data}, nil
}

func (e *echo) Query_Nil(in *types.ReqString) (types.Message, error) {
	return nil, nil
}

// 返回值不对, 不会被收集
func (e *echo) Query_Bad(in *types.ReqString) types.Message {
	return nil
}

func init() {
	Register("echo", newEcho, 0)
}

// echoTx 按 ty 选择子消息, 未知的 ty 使用 Echo
func echoTx(ty int32, data string) *types.Transaction {
	action := &echoAction{Ty: ty}
	if data != "" {
		msg := &types.ReqString{Data: data}
		switch ty {
		case tyFail:
			action.Value = &echoAction_Fail{Fail: msg}
		case tyNone:
			action.Value = &echoAction_None{None: msg}
		default:
			action.Value = &echoAction_Echo{Echo: msg}
		}
	}
	return types.CreateTx("echo", action, 0, 1)
}

func TestLoadDriver(t *testing.T) {
	d, err := LoadDriver("echo", 0)
	require.NoError(t, err)
	assert.Equal(t, "echo", d.GetExecutorType().GetName())
	_, err = LoadDriver("nosuch", 0)
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	assert.Contains(t, DriverNames(), "echo")

	assert.Equal(t, address.ExecAddress("echo"), ExecAddress("echo"))
	assert.True(t, IsDriverAddress(ExecAddress("echo")))
	assert.Nil(t, CheckAddress(ExecAddress("echo")))
	assert.NotNil(t, CheckAddress("xxx"))
	assert.Panics(t, func() { Register("echo", newEcho, 0) })
}

func TestListMethod(t *testing.T) {
	d := newEcho()
	funcmap := d.GetFuncMap()
	for _, name := range []string{"Exec_Echo", "Exec_Fail", "ExecLocal_Echo", "Query_Echo", "Query_Nil"} {
		_, ok := funcmap[name]
		assert.True(t, ok, name)
	}
	_, ok := funcmap["Query_Bad"]
	assert.False(t, ok)
	_, ok = funcmap["ExecLocal"]
	assert.False(t, ok)
}

func TestExecDispatch(t *testing.T) {
	d := newEcho()
	receipt, err := d.Exec(echoTx(tyEcho, "hi"), 0)
	require.NoError(t, err)
	assert.Equal(t, "mavl-echo-hi", string(receipt.KV[0].Key))
	assert.Equal(t, "Echo", d.GetActionName(echoTx(tyEcho, "hi")))

	_, err = d.Exec(echoTx(tyFail, "hi"), 0)
	assert.Equal(t, errFail, err)

	//名称表中有, 但没有实现
	_, err = d.Exec(echoTx(tyNone, "hi"), 0)
	assert.Equal(t, types.ErrActionNotSupport, err)

	//未知的 Ty
	_, err = d.Exec(echoTx(100, "hi"), 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	assert.Equal(t, "unknown", d.GetActionName(echoTx(100, "hi")))

	//Ty 和子消息不一致
	mismatch := types.CreateTx("echo", &echoAction{Ty: tyFail, Value: &echoAction_Echo{Echo: &types.ReqString{Data: "hi"}}}, 0, 1)
	_, err = d.Exec(mismatch, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	assert.Equal(t, "unknown", d.GetActionName(mismatch))

	//没有子消息
	_, err = d.Exec(echoTx(tyEcho, ""), 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	assert.Equal(t, types.ErrActionNotSupport, d.CheckTx(echoTx(tyEcho, ""), 0))

	//payload 无法解析
	_, err = d.Exec(&types.Transaction{Execer: []byte("echo"), Payload: []byte{0xff, 0xff}}, 0)
	assert.NotNil(t, err)
}

func TestExecLocalDispatch(t *testing.T) {
	d := newEcho()
	set, err := d.ExecLocal(echoTx(tyEcho, "hi"), &types.ReceiptData{Ty: types.ExecOk}, 0)
	require.NoError(t, err)
	require.Len(t, set.KV, 1)
	assert.Equal(t, "LODB-echo-hi", string(set.KV[0].Key))

	//没有 ExecLocal_Fail, 返回空集合
	set, err = d.ExecLocal(echoTx(tyFail, "hi"), &types.ReceiptData{Ty: types.ExecOk}, 0)
	require.NoError(t, err)
	assert.Len(t, set.KV, 0)
}

func TestQueryDispatch(t *testing.T) {
	d := newEcho()
	reply, err := d.Query("Echo", types.Encode(&types.ReqString{Data: "q"}))
	require.NoError(t, err)
	assert.Equal(t, "q", reply.(*types.ReplyString).Data)

	_, err = d.Query("Nil", types.Encode(&types.ReqString{}))
	assert.Equal(t, types.ErrNotFound, err)
	_, err = d.Query("Bad", nil)
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = d.Query("Echo", []byte{0xff, 0xff})
	assert.NotNil(t, err)
}

func TestCreateTx(t *testing.T) {
	ety := NewExecType("echo", &echoAction{}, map[string]int32{"Echo": tyEcho})
	tx, err := ety.CreateTx(&echoAction{Ty: tyEcho, Value: &echoAction_Echo{Echo: &types.ReqString{Data: "x"}}}, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), tx.Fee)
	action, err := ety.DecodePayload(tx)
	require.NoError(t, err)
	assert.Equal(t, int32(tyEcho), action.GetTy())
	assert.Equal(t, "x", action.(*echoAction).GetEcho().Data)
	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "Echo", name)
	assert.Equal(t, "x", value.Interface().(*types.ReqString).Data)

	_, err = ety.CreateTx(&echoAction{Ty: 9}, 10, 1)
	assert.Equal(t, types.ErrActionNotSupport, err)
}

func TestKVCreatorAndHeightIndex(t *testing.T) {
	assert.Equal(t, "000000000000100002", HeightIndexStr(1, 2))
	kvdb := &memKV{m: map[string][]byte{}}
	c := NewKVCreator(kvdb)
	c.Add([]byte("a"), []byte("1")).AddKV([]byte("b"), []byte("2")).AddMsg([]byte("c"), &types.ReqString{Data: "3"})
	c.AddList([]*types.KeyValue{{Key: []byte("d")}})
	assert.Len(t, c.KVList(), 4)
	assert.Equal(t, []byte("1"), kvdb.m["a"])
	_, ok := kvdb.m["b"]
	assert.False(t, ok)
}

type memKV struct {
	m map[string][]byte
}

func (m *memKV) Get(key []byte) ([]byte, error) {
	v, ok := m.m[string(key)]
	if !ok {
		return nil, types.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(key []byte, value []byte) error {
	m.m[string(key)] = value
	return nil
}
