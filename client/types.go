// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TxResult 交易结果的显示格式
type TxResult struct {
	Height    uint64        `json:"height"`
	Hash      string        `json:"hash"`
	Execer    string        `json:"execer"`
	Action    string        `json:"action"`
	From      string        `json:"from"`
	Amount    string        `json:"amount,omitempty"`
	BlockTime uint64        `json:"blockTime"`
	Ty        uint32        `json:"ty"`
	Logs      []*ReceiptLog `json:"logs"`
}

// ReceiptLog 日志的显示格式
type ReceiptLog struct {
	Ty   uint32      `json:"ty"`
	Name string      `json:"name"`
	Log  interface{} `json:"log"`
}

// AccountResult 账户的显示格式
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

// DecodeAccount 金额以 coin 为单位显示
func DecodeAccount(acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:    acc.Addr.Hex(),
		Balance: types.FormatCoins(acc.GetBalance()),
		Frozen:  types.FormatCoins(acc.GetFrozen()),
	}
}

// DecodeTxResult 解析交易以及日志
func DecodeTxResult(r *types.TxResult) *TxResult {
	res := &TxResult{
		Height:    r.Height,
		Hash:      types.ToHex(r.Hash),
		BlockTime: r.BlockTime,
		Action:    "unknown",
	}
	if r.Tx != nil {
		res.Execer = string(r.Tx.Execer)
		res.From = r.Tx.From.Hex()
		if !r.Tx.GetValue().IsZero() {
			res.Amount = types.FormatCoins(r.Tx.GetValue())
		}
		if driver, err := drivers.LoadDriver(res.Execer); err == nil {
			res.Action = driver.GetActionName(r.Tx)
		}
	}
	if r.Receipt != nil {
		res.Ty = r.Receipt.Ty
		for _, l := range r.Receipt.Logs {
			res.Logs = append(res.Logs, DecodeLog(l))
		}
	}
	return res
}

// DecodeLog 按注册的日志类型解析
func DecodeLog(l *types.ReceiptLog) *ReceiptLog {
	name, v, err := types.DecodeLog(l)
	if err != nil {
		return &ReceiptLog{Ty: l.Ty, Name: "unknown", Log: types.ToHex(l.Log)}
	}
	return &ReceiptLog{Ty: l.Ty, Name: name, Log: v}
}

// CreateTx 按 action 名称构造交易
func CreateTx(ety types.ExecutorType, execer, action string, payload interface{}, from common.Address, value *uint256.Int) (*types.Transaction, error) {
	data, err := ety.CreatePayload(action, payload)
	if err != nil {
		return nil, err
	}
	return types.NewTransaction(execer, data, from, value), nil
}
