// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMethodReturnType 方法的返回值必须是 (T, error)
var ErrMethodReturnType = errors.New("ErrMethodReturnType")

var typeOfError = reflect.TypeOf((*error)(nil)).Elem()

var methodPrefix = []string{"Exec_", "ExecLocal_", "Query_"}

// Is this an exported - upper case - name?
func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// ListMethod 列出执行器中以 Exec_ ExecLocal_ Query_ 开头的方法
func ListMethod(driver interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(driver)
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		for _, prefix := range methodPrefix {
			if strings.HasPrefix(mname, prefix) && len(mname) > len(prefix) {
				if checkReturn(method.Type) {
					methods[mname] = method
				} else {
					blog.Warn("ListMethod bad return type", "method", mname)
				}
				break
			}
		}
	}
	return methods
}

func checkReturn(ty reflect.Type) bool {
	return ty.NumOut() == 2 && ty.Out(1) == typeOfError
}

func splitReturn(valueret []reflect.Value) (interface{}, error) {
	if len(valueret) != 2 {
		return nil, ErrMethodReturnType
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		err, ok := r2.(error)
		if !ok {
			return nil, ErrMethodReturnType
		}
		return nil, err
	}
	if valueret[0].Kind() == reflect.Ptr && valueret[0].IsNil() {
		return nil, nil
	}
	return valueret[0].Interface(), nil
}

// ListActionMethod action 消息的全部导出方法, 用于读取 oneof
func ListActionMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		if method.PkgPath != "" || !isExported(method.Name) {
			continue
		}
		methods[method.Name] = method
	}
	return methods
}

// GetActionValue 通过 GetValue 拿到 oneof 的包装类型 (如 *types.CoinsAction_Transfer),
// 名称为下划线之后的部分, 再调用 Get<名称> 取出子消息
func GetActionValue(action ExecutorAction, funclist map[string]reflect.Method) (string, int32, reflect.Value) {
	getValue, ok := funclist["GetValue"]
	if !ok {
		return "", 0, reflect.Value{}
	}
	value := reflect.ValueOf(action)
	rcvr := getValue.Func.Call([]reflect.Value{value})
	if !IsOK(rcvr, 1) || IsNilVal(rcvr[0]) {
		return "", 0, reflect.Value{}
	}
	wrapper := rcvr[0].Elem()
	if wrapper.Kind() == reflect.Ptr && wrapper.IsNil() {
		return "", 0, reflect.Value{}
	}
	datas := strings.Split(wrapper.Type().String(), "_")
	if len(datas) != 2 {
		return "", 0, reflect.Value{}
	}
	getter, ok := funclist["Get"+datas[1]]
	if !ok {
		return "", 0, reflect.Value{}
	}
	val := getter.Func.Call([]reflect.Value{value})
	if !IsOK(val, 1) || IsNilVal(val[0]) {
		return "", 0, reflect.Value{}
	}
	return datas[1], action.GetTy(), val[0]
}

// IsOK 返回值个数为 n, 且都可以取出
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNilVal(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

// IsNilVal 无效值或 nil 指针/接口
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
