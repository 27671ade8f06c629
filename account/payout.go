// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Payout 把已经从托管账户扣除的金额转给收款人
// 返回错误时调用方负责回滚整个交易
type Payout interface {
	Pay(coins *DB, execaddr, to common.Address, amount *uint256.Int) (*types.Receipt, error)
}

// PayoutFunc 函数形式的 Payout
type PayoutFunc func(coins *DB, execaddr, to common.Address, amount *uint256.Int) (*types.Receipt, error)

// Pay 调用 f
func (f PayoutFunc) Pay(coins *DB, execaddr, to common.Address, amount *uint256.Int) (*types.Receipt, error) {
	return f(coins, execaddr, to, amount)
}

// CoinsPayout 默认实现：从执行器地址转 coins 给收款人
type CoinsPayout struct{}

// Pay 执行 coins 转账
func (CoinsPayout) Pay(coins *DB, execaddr, to common.Address, amount *uint256.Int) (*types.Receipt, error) {
	return coins.Transfer(execaddr, to, amount)
}
