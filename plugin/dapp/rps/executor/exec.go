// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

// Exec_Create 创建游戏
func (r *RPS) Exec_Create(payload *rty.RPSCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RPSCreate(payload)
}

// Exec_Play 对手出招
func (r *RPS) Exec_Play(payload *rty.RPSPlay, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RPSPlay(payload)
}

// Exec_Reveal 对手揭晓
func (r *RPS) Exec_Reveal(payload *rty.RPSReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RPSReveal(payload)
}

// Exec_Resolve 结算
func (r *RPS) Exec_Resolve(payload *rty.RPSResolve, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RPSResolve(payload)
}

// Exec_Cancel 取消
func (r *RPS) Exec_Cancel(payload *rty.RPSCancel, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RPSCancel(payload)
}

// Exec_Penalize 超时惩罚
func (r *RPS) Exec_Penalize(payload *rty.RPSPenalize, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RPSPenalize(payload)
}

// Exec_Withdraw 提取余额
func (r *RPS) Exec_Withdraw(payload *rty.RPSWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RPSWithdraw(payload)
}
