// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// LoadExecAccount 读取 addr 在执行器 execaddr 中托管的账户
func (acc *DB) LoadExecAccount(addr, execaddr common.Address) *types.Account {
	value, err := acc.db.Get(acc.execAccountKey(addr, execaddr))
	if err != nil {
		return &types.Account{Addr: addr, Balance: new(uint256.Int), Frozen: new(uint256.Int)}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err)
	}
	return &types.Account{Addr: acc1.Addr, Balance: acc1.GetBalance(), Frozen: acc1.GetFrozen()}
}

// SaveExecAccount 保存执行账户
func (acc *DB) SaveExecAccount(execaddr common.Address, acc1 *types.Account) {
	set := acc.GetExecKVSet(execaddr, acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].Key, set[i].Value); err != nil {
			panic(err)
		}
	}
}

// GetExecKVSet 将执行账户数据转为数据库存储kv
func (acc *DB) GetExecKVSet(execaddr common.Address, acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.execAccountKey(acc1.Addr, execaddr),
		Value: value,
	})
	return kvset
}

func (acc *DB) execAccountKey(address, execaddr common.Address) (key []byte) {
	key = make([]byte, 0, len(acc.execAccountKeyPerfix)+85)
	key = append(key, acc.execAccountKeyPerfix...)
	key = append(key, []byte(execaddr.Hex())...)
	key = append(key, []byte(":")...)
	key = append(key, []byte(address.Hex())...)
	return key
}

// TransferToExec 把 coins 转入执行器地址，同时记入 from 在执行器中的托管余额
func (acc *DB) TransferToExec(from, execaddr common.Address, amount *uint256.Int) (*types.Receipt, error) {
	receipt, err := acc.Transfer(from, execaddr, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.ExecDeposit(from, execaddr, amount)
	if err != nil {
		//存款不应该出任何问题
		panic(err)
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

// TransferWithdraw 撤回转帐
func (acc *DB) TransferWithdraw(from, execaddr common.Address, amount *uint256.Int) (*types.Receipt, error) {
	//先判断可以取款
	if err := acc.CheckTransfer(execaddr, from, amount); err != nil {
		return nil, err
	}
	receipt, err := acc.ExecWithdraw(execaddr, from, amount)
	if err != nil {
		return nil, err
	}
	//然后执行transfer
	receipt2, err := acc.Transfer(execaddr, from, amount)
	if err != nil {
		panic(err)
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

// ExecFrozen 执行冻结资金
func (acc *DB) ExecFrozen(addr, execaddr common.Address, amount *uint256.Int) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	if acc1.GetBalance().Lt(amount) {
		alog.Error("ExecFrozen", "balance", acc1.GetBalance(), "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := acc1.Clone()
	acc1.Balance = new(uint256.Int).Sub(acc1.GetBalance(), amount)
	acc1.Frozen = new(uint256.Int).Add(acc1.GetFrozen(), amount)
	receiptBalance := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     copyacc,
		Current:  acc1,
	}
	acc.SaveExecAccount(execaddr, acc1)
	return acc.execReceipt(types.TyLogExecFrozen, acc1, receiptBalance), nil
}

// ExecActive 执行激活资金
func (acc *DB) ExecActive(addr, execaddr common.Address, amount *uint256.Int) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	if acc1.GetFrozen().Lt(amount) {
		alog.Error("ExecActive", "frozen", acc1.GetFrozen(), "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := acc1.Clone()
	acc1.Balance = new(uint256.Int).Add(acc1.GetBalance(), amount)
	acc1.Frozen = new(uint256.Int).Sub(acc1.GetFrozen(), amount)
	receiptBalance := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     copyacc,
		Current:  acc1,
	}
	acc.SaveExecAccount(execaddr, acc1)
	return acc.execReceipt(types.TyLogExecActive, acc1, receiptBalance), nil
}

// ExecTransferFrozen 从自己冻结的钱里面扣除，转移到别人的活动钱包里面去
func (acc *DB) ExecTransferFrozen(from, to, execaddr common.Address, amount *uint256.Int) (*types.Receipt, error) {
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadExecAccount(from, execaddr)
	accTo := acc.LoadExecAccount(to, execaddr)
	if accFrom.GetFrozen().Lt(amount) {
		alog.Error("ExecTransferFrozen", "from", from, "frozen", accFrom.GetFrozen(), "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyaccFrom := accFrom.Clone()
	copyaccTo := accTo.Clone()

	accFrom.Frozen = new(uint256.Int).Sub(accFrom.GetFrozen(), amount)
	accTo.Balance = new(uint256.Int).Add(accTo.GetBalance(), amount)

	receiptBalanceFrom := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     copyaccFrom,
		Current:  accFrom,
	}
	receiptBalanceTo := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     copyaccTo,
		Current:  accTo,
	}

	acc.SaveExecAccount(execaddr, accFrom)
	acc.SaveExecAccount(execaddr, accTo)
	return acc.execReceipt2(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

// ExecDeposit 在当前addr的execaddr地址中存款
func (acc *DB) ExecDeposit(addr, execaddr common.Address, amount *uint256.Int) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	copyacc := acc1.Clone()
	acc1.Balance = new(uint256.Int).Add(acc1.GetBalance(), amount)
	receiptBalance := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     copyacc,
		Current:  acc1,
	}
	acc.SaveExecAccount(execaddr, acc1)
	return acc.execReceipt(types.TyLogExecDeposit, acc1, receiptBalance), nil
}

// ExecWithdraw 执行撤回转帐
func (acc *DB) ExecWithdraw(execaddr, addr common.Address, amount *uint256.Int) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	if acc1.GetBalance().Lt(amount) {
		return nil, types.ErrNoBalance
	}
	copyacc := acc1.Clone()
	acc1.Balance = new(uint256.Int).Sub(acc1.GetBalance(), amount)
	receiptBalance := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     copyacc,
		Current:  acc1,
	}
	acc.SaveExecAccount(execaddr, acc1)
	return acc.execReceipt(types.TyLogExecWithdraw, acc1, receiptBalance), nil
}

func (acc *DB) execReceipt(ty uint32, acc1 *types.Account, r *types.ReceiptExecAccountTransfer) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(r),
	}
	kv := acc.GetExecKVSet(r.ExecAddr, acc1)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1},
	}
}

func (acc *DB) execReceipt2(acc1, acc2 *types.Account, r1, r2 *types.ReceiptExecAccountTransfer) *types.Receipt {
	ty := types.TyLogExecTransfer
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(r1),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(r2),
	}
	kv := acc.GetExecKVSet(r1.ExecAddr, acc1)
	kv = append(kv, acc.GetExecKVSet(r2.ExecAddr, acc2)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}
