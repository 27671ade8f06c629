// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 命令行公共的参数处理
package types

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GetConf 配置文件路径
func GetConf(cmd *cobra.Command) string {
	conf, _ := cmd.Flags().GetString("conf")
	return conf
}

// GetAddr 读取地址参数
func GetAddr(cmd *cobra.Command, field string) (common.Address, error) {
	s, _ := cmd.Flags().GetString(field)
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(types.ErrInvalidParam, "%s: bad address %q", field, s)
	}
	return common.HexToAddress(s), nil
}

// GetAmountValue 读取以 coin 为单位的金额
func GetAmountValue(cmd *cobra.Command, field string) (*uint256.Int, error) {
	s, _ := cmd.Flags().GetString(field)
	if s == "" {
		return new(uint256.Int), nil
	}
	return types.ParseCoins(s)
}

// SendTx 用 --from 作为发送者构造并执行交易
func SendTx(cmd *cobra.Command, ety types.ExecutorType, execer, action string, payload interface{}, value *uint256.Int) {
	from, err := GetAddr(cmd, "from")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx, err := client.CreateTx(ety, execer, action, payload, from, value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	ctx := client.NewTxCtx(GetConf(cmd), tx)
	ctx.Run()
}
