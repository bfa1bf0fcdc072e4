// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
)

// isAllowKeyWrite 执行器只能修改自己的数据, 以及通过 account.DB 修改原生币账户
func isAllowKeyWrite(key, execer []byte) bool {
	if bytes.HasPrefix(key, statePrefix(execer)) {
		return true
	}
	return bytes.HasPrefix(key, statePrefix([]byte(cty.CoinsX)))
}

func statePrefix(execer []byte) []byte {
	prefix := append([]byte(types.StatePrefix), execer...)
	return append(prefix, '-')
}

// isAllowLocalKey 本地数据库的 key 必须是 LODB-<execer>-xxx
func isAllowLocalKey(execer []byte, key []byte) error {
	prefix := append([]byte(types.LocalPrefix), execer...)
	prefix = append(prefix, '-')
	if len(key) <= len(prefix) {
		elog.Error("isAllowLocalKey too short", "key", string(key), "exec", string(execer))
		return types.ErrNotAllowKey
	}
	if !bytes.HasPrefix(key, prefix) {
		elog.Error("isAllowLocalKey key prefix not match", "key", string(key), "exec", string(execer))
		return types.ErrNotAllowKey
	}
	return nil
}
