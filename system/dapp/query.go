// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"

	"github.com/33cn/referendum/types"
	"github.com/golang/protobuf/proto"
)

// Query 调用子类的 Query_<funcname>, 参数为 proto 编码
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcname = "Query_" + funcname
	method, ok := d.funcmap[funcname]
	if !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, types.ErrActionNotSupport
	}
	ty := method.Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrActionNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, types.ErrActionNotSupport
	}
	p := reflect.New(paramin.Elem())
	in, ok := p.Interface().(proto.Message)
	if !ok {
		blog.Error(funcname + " in param is not proto.Message")
		return nil, types.ErrActionNotSupport
	}
	if err := types.Decode(params, in); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call query error", "func", funcname, "info", r)
			err = types.ErrActionNotSupport
			msg = nil
		}
	}()
	valueret := method.Func.Call([]reflect.Value{d.childValue, reflect.ValueOf(in)})
	r1, err := splitReturn(valueret)
	if err != nil {
		return nil, err
	}
	if r1 == nil {
		return nil, types.ErrNotFound
	}
	reply, ok := r1.(types.Message)
	if !ok {
		return nil, ErrMethodReturnType
	}
	return reply, nil
}

// GetPrefixCount 本地数据库前缀计数
func (d *DriverBase) GetPrefixCount(prefix []byte) int64 {
	return d.GetLocalDB().PrefixCount(prefix)
}
