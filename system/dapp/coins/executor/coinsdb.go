// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dbm "github.com/33cn/referendum/common/db"
	cmath "github.com/33cn/referendum/common/math"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
)

func calcAddrKey(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-coins-Addr:%s", addr))
}

func calcAddrTxPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-coins-Tx:%s:", addr))
}

func calcAddrTxKey(addr string, heightIndex string) []byte {
	return []byte(fmt.Sprintf("LODB-coins-Tx:%s:%s", addr, heightIndex))
}

func geAddrReciverKV(addr string, reciverAmount uint64) *types.KeyValue {
	reciver := &cty.AddrReciver{Addr: addr, Amount: reciverAmount}
	return &types.KeyValue{Key: calcAddrKey(addr), Value: types.Encode(reciver)}
}

func getAddrReciver(db dbm.KV, addr string) (uint64, error) {
	reciver := cty.AddrReciver{}
	addrReciver, err := db.Get(calcAddrKey(addr))
	if err != nil && err != types.ErrNotFound {
		return 0, err
	}
	if len(addrReciver) == 0 {
		return 0, nil
	}
	err = types.Decode(addrReciver, &reciver)
	if err != nil {
		return 0, err
	}
	return reciver.Amount, nil
}

func updateAddrReciver(cachedb dbm.KV, addr string, amount uint64) (*types.KeyValue, error) {
	recv, err := getAddrReciver(cachedb, addr)
	if err != nil {
		return nil, err
	}
	recv, err = cmath.SafeAdd(recv, amount)
	if err != nil {
		return nil, err
	}
	kv := geAddrReciverKV(addr, recv)
	if err := cachedb.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return kv, nil
}
