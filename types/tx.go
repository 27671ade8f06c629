// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Transaction 交易结构
// From 由执行环境认证，执行器直接信任
type Transaction struct {
	Execer  []byte
	Payload []byte
	From    common.Address
	Value   *uint256.Int
	Nonce   uint64
}

// NewTransaction 构造一笔交易，value 为 nil 时视为 0
func NewTransaction(execer string, payload []byte, from common.Address, value *uint256.Int) *Transaction {
	if value == nil {
		value = new(uint256.Int)
	}
	return &Transaction{
		Execer:  []byte(execer),
		Payload: payload,
		From:    from,
		Value:   value,
	}
}

// Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return crypto.Keccak256(Encode(tx))
}

// GetValue never returns nil
func (tx *Transaction) GetValue() *uint256.Int {
	if tx == nil || tx.Value == nil {
		return new(uint256.Int)
	}
	return tx.Value
}

// ActionEnvelope 执行器 payload 的外层结构，Ty 为 action 类型
type ActionEnvelope struct {
	Ty    uint32
	Value []byte
}

// EncodeAction 把 action 打包成交易 payload
func EncodeAction(ty uint32, action interface{}) []byte {
	return Encode(&ActionEnvelope{Ty: ty, Value: Encode(action)})
}

// DecodeEnvelope 解析交易 payload
func DecodeEnvelope(payload []byte) (*ActionEnvelope, error) {
	var env ActionEnvelope
	if err := Decode(payload, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
