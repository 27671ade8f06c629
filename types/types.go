// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 实现了基础结构体、接口、常量等的定义
package types

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Message 执行器查询和日志的通用返回类型
type Message interface{}

// 交易执行结果
const (
	ExecErr  = uint32(0)
	ExecPack = uint32(1)
	ExecOk   = uint32(2)
)

// KeyValue 状态数据库的一次写入, Value 为 nil 表示删除
type KeyValue struct {
	Key   []byte
	Value []byte
}

// ReceiptLog 执行器产生的结构化日志
type ReceiptLog struct {
	Ty  uint32
	Log []byte
}

// Receipt 执行器返回的收据，包括状态变化以及日志
type Receipt struct {
	Ty   uint32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

// ReceiptData 持久化的收据，不包含 KV
type ReceiptData struct {
	Ty   uint32
	Logs []*ReceiptLog
}

// TxResult 一笔交易执行后的完整记录
type TxResult struct {
	Height    uint64
	Hash      []byte
	Tx        *Transaction
	Receipt   *ReceiptData
	BlockTime uint64
}

// LocalDBSet 本地索引数据库的写入集合
type LocalDBSet struct {
	KV []*KeyValue
}

// Account 账户余额，Frozen 为锁定在未结束游戏中的金额
type Account struct {
	Addr    common.Address
	Balance *uint256.Int
	Frozen  *uint256.Int
}

// GetBalance never returns nil
func (acc *Account) GetBalance() *uint256.Int {
	if acc == nil || acc.Balance == nil {
		return new(uint256.Int)
	}
	return acc.Balance
}

// GetFrozen never returns nil
func (acc *Account) GetFrozen() *uint256.Int {
	if acc == nil || acc.Frozen == nil {
		return new(uint256.Int)
	}
	return acc.Frozen
}

// Clone deep copy, used to keep the previous state in receipts
func (acc *Account) Clone() *Account {
	return &Account{
		Addr:    acc.Addr,
		Balance: new(uint256.Int).Set(acc.GetBalance()),
		Frozen:  new(uint256.Int).Set(acc.GetFrozen()),
	}
}

// ReceiptAccountTransfer 账户变化日志
type ReceiptAccountTransfer struct {
	Prev    *Account
	Current *Account
}

// ReceiptExecAccountTransfer 执行器内账户变化日志
type ReceiptExecAccountTransfer struct {
	ExecAddr common.Address
	Prev     *Account
	Current  *Account
}

// Encode 序列化，失败说明结构体定义有问题，直接 panic
func Encode(data interface{}) []byte {
	b, err := rlp.EncodeToBytes(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 反序列化
func Decode(data []byte, msg interface{}) error {
	if err := rlp.DecodeBytes(data, msg); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

// MustDecode 反序列化，失败 panic
func MustDecode(data []byte, msg interface{}) {
	if err := Decode(data, msg); err != nil {
		panic(err)
	}
}

// ToHex 带 0x 前缀的十六进制
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
