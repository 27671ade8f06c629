// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// MaxDuration 游戏最长持续时间（秒）
const MaxDuration = uint64(365 * 24 * 3600)

// LoadConfig 读取 [exec.sub.rps]
func LoadConfig(cfg *types.Config) *Config {
	conf := &Config{}
	if cfg != nil {
		cfg.Exec.MustDecodeSub(RPSX, conf)
	}
	return conf
}

// GetMaxBet 没有配置或者为 0 时不限制，返回 nil
func (c *Config) GetMaxBet() (*uint256.Int, error) {
	if c == nil || c.MaxBet == "" {
		return nil, nil
	}
	v, err := types.ParseCoins(c.MaxBet)
	if err != nil {
		return nil, err
	}
	if v.IsZero() {
		return nil, nil
	}
	return v, nil
}

// MinDuration 配置的最短持续时间
func MinDuration(cfg *types.Config) uint64 {
	if cfg == nil || cfg.Exec == nil || cfg.Exec.MinDuration <= 0 {
		return types.DefaultMinDuration
	}
	return uint64(cfg.Exec.MinDuration)
}

// CheckTerms 创建游戏或者实例时的参数检查
// 持续时间最先检查，太短时不论其他参数如何都返回 ErrDeadlineTooShort
func CheckTerms(cfg *types.Config, creator, opponent common.Address, duration uint64, bet *uint256.Int) error {
	if minDuration := MinDuration(cfg); duration < minDuration {
		return errors.Wrapf(ErrDeadlineTooShort, "duration %d < %d", duration, minDuration)
	}
	if duration > MaxDuration {
		return errors.Wrapf(ErrInvalidArgument, "duration %d > %d", duration, MaxDuration)
	}
	if creator == (common.Address{}) {
		return errors.Wrap(ErrInvalidArgument, "zero creator")
	}
	if opponent == (common.Address{}) {
		return errors.Wrap(ErrInvalidArgument, "zero opponent")
	}
	if opponent == creator {
		return errors.Wrap(ErrInvalidArgument, "opponent is creator")
	}
	if bet == nil || bet.IsZero() {
		return errors.Wrap(ErrInvalidArgument, "zero bet")
	}
	maxBet, err := LoadConfig(cfg).GetMaxBet()
	if err != nil {
		return errors.Wrapf(ErrInvalidArgument, "maxBet: %v", err)
	}
	if maxBet != nil && bet.Gt(maxBet) {
		return errors.Wrapf(ErrInvalidArgument, "bet %s > maxBet %s", types.FormatCoins(bet), types.FormatCoins(maxBet))
	}
	return nil
}
