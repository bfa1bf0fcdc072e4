// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/referendum/common/db"
	"github.com/33cn/referendum/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func GenerAccDb(t *testing.T) *DB {
	stroedb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	accCoin, err := NewCoinsAccount("bty", stroedb)
	require.NoError(t, err)
	accCoin.SaveAccount(&types.Account{Balance: 1000 * types.Coin, Addr: addr1})
	accCoin.SaveAccount(&types.Account{Balance: 900 * types.Coin, Addr: addr2})
	return accCoin
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("co-ins", "bty", nil)
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = NewAccountDB("coins", "b-ty", nil)
	assert.Equal(t, types.ErrInvalidParam, err)
	acc, err := NewAccountDB("coins", "bty", nil)
	require.NoError(t, err)
	assert.Equal(t, "mavl-coins-bty-"+addr1, string(acc.AccountKey(addr1)))
}

func TestLoadAccount(t *testing.T) {
	accCoin := GenerAccDb(t)
	assert.Equal(t, 1000*types.Coin, accCoin.LoadAccount(addr1).Balance)
	acc := accCoin.LoadAccount(addr3)
	assert.Equal(t, addr3, acc.Addr)
	assert.Equal(t, uint64(0), acc.Balance)
	accs := accCoin.LoadAccounts([]string{addr1, addr2, addr3})
	require.Len(t, accs, 3)
	assert.Equal(t, 900*types.Coin, accs[1].Balance)
}

func TestTransfer(t *testing.T) {
	accCoin := GenerAccDb(t)
	receipt, err := accCoin.Transfer(addr1, addr3, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)

	var rt types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rt))
	assert.Equal(t, 1000*types.Coin, rt.Prev.Balance)
	assert.Equal(t, 990*types.Coin, rt.Current.Balance)

	assert.Equal(t, 990*types.Coin, accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, 10*types.Coin, accCoin.LoadAccount(addr3).Balance)
}

func TestTransferErrors(t *testing.T) {
	accCoin := GenerAccDb(t)
	_, err := accCoin.Transfer(addr1, addr3, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = accCoin.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = accCoin.Transfer(addr3, addr1, 1)
	assert.Equal(t, types.ErrNoBalance, err)

	//余额不足时不修改任何账户
	_, err = accCoin.Transfer(addr2, addr3, 901*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, 900*types.Coin, accCoin.LoadAccount(addr2).Balance)
	assert.Equal(t, uint64(0), accCoin.LoadAccount(addr3).Balance)

	accCoin.SaveAccount(&types.Account{Balance: ^uint64(0), Addr: addr3})
	_, err = accCoin.Transfer(addr1, addr3, 1)
	assert.Equal(t, types.ErrOverflow, err)
}

func TestBurn(t *testing.T) {
	accCoin := GenerAccDb(t)
	receipt, err := accCoin.Burn(addr1, types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogFee), receipt.Logs[0].Ty)
	assert.Equal(t, 999*types.Coin, accCoin.LoadAccount(addr1).Balance)

	receipt, err = accCoin.Burn(addr1, 0)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 0)

	_, err = accCoin.Burn(addr3, 1)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestGenesisInit(t *testing.T) {
	accCoin := GenerAccDb(t)
	receipt, err := accCoin.GenesisInit(addr3, 100*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, 100*types.Coin, accCoin.LoadAccount(addr3).Balance)

	_, err = accCoin.GenesisInit(addr3, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = accCoin.GenesisInit(addr3, ^uint64(0))
	assert.Equal(t, types.ErrOverflow, err)
}
