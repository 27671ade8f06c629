// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现 coins 账户以及执行器托管账户的资产操作
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. exec account: deposit, frozen, active, withdraw

import (
	"github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db                   db.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
}

// NewCoinsAccount coins 账户
func NewCoinsAccount(kvdb db.KV) *DB {
	prefix := "mavl-coins-"
	acc := &DB{}
	acc.accountKeyPerfix = []byte(prefix)
	acc.execAccountKeyPerfix = append([]byte(prefix), []byte("exec-")...)
	acc.db = kvdb
	return acc
}

// SetDB 切换底层状态数据库
func (acc *DB) SetDB(kvdb db.KV) *DB {
	acc.db = kvdb
	return acc
}

// ExecAddress 根据执行器名称获取执行器地址
func ExecAddress(name string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte("exec-" + name))[12:])
}

// LoadAccount 读取账户，不存在时返回零余额账户
func (acc *DB) LoadAccount(addr common.Address) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr, Balance: new(uint256.Int), Frozen: new(uint256.Int)}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &types.Account{Addr: acc1.Addr, Balance: acc1.GetBalance(), Frozen: acc1.GetFrozen()}
}

// CheckTransfer 检查是否可以转账
func (acc *DB) CheckTransfer(from, to common.Address, amount *uint256.Int) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance().Lt(amount) {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer coins 转账
func (acc *DB) Transfer(from, to common.Address, amount *uint256.Int) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.GetBalance().Lt(amount) {
		alog.Error("Transfer", "from", from, "balance", accFrom.GetBalance(), "amount", amount)
		return nil, types.ErrNoBalance
	}
	balanceTo, overflow := new(uint256.Int).AddOverflow(accTo.GetBalance(), amount)
	if overflow {
		return nil, types.ErrAmount
	}
	copyfrom := accFrom.Clone()
	copyto := accTo.Clone()

	accFrom.Balance = new(uint256.Int).Sub(accFrom.GetBalance(), amount)
	accTo.Balance = balanceTo

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo *types.ReceiptAccountTransfer) *types.Receipt {
	ty := types.TyLogTransfer
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 写入状态数据库
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].Key, set[i].Value); err != nil {
			panic(err)
		}
	}
}

// GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey 账户在状态数据库中的 key
func (acc *DB) AccountKey(address common.Address) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+42)
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address.Hex())...)
	return key
}

func (acc *DB) mergeReceipt(receipt, receipt2 *types.Receipt) *types.Receipt {
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	receipt.KV = append(receipt.KV, receipt2.KV...)
	return receipt
}
