// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CoinPrecision 1 coin = 1e8 最小单位
const CoinPrecision = 8

// Coin 1 coin 对应的最小单位数
var Coin = uint256.NewInt(1e8)

// ParseCoins 把 "1.5" 这样的 coin 字符串转换成最小单位
func ParseCoins(s string) (*uint256.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrAmount, "parse %q: %v", s, err)
	}
	if d.Sign() < 0 {
		return nil, errors.Wrapf(ErrAmount, "negative amount %s", s)
	}
	v := d.Shift(CoinPrecision)
	if !v.Equal(v.Truncate(0)) {
		return nil, errors.Wrapf(ErrAmount, "amount %s has more than %d decimals", s, CoinPrecision)
	}
	amount, err := uint256.FromDecimal(v.Truncate(0).String())
	if err != nil {
		return nil, errors.Wrapf(ErrAmount, "amount %s out of range", s)
	}
	return amount, nil
}

// FormatCoins 最小单位转换成 coin 字符串
func FormatCoins(amount *uint256.Int) string {
	if amount == nil {
		return "0"
	}
	return decimal.RequireFromString(amount.Dec()).Shift(-CoinPrecision).String()
}

// CheckAmount 检测转账金额, 必须大于 0
func CheckAmount(amount *uint256.Int) bool {
	return amount != nil && !amount.IsZero()
}
