// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/rps/types"
)

var (
	commonPrefix = []byte("mavl-")
	localPrefix  = []byte("LODB-")
	bytesExec    = []byte("exec")
	execerCoins  = []byte("coins")
	execerManage = []byte("manage")
)

// 可以直接修改 coins 账户的执行器（收取下注）
var allowDepositExec = [][]byte{[]byte("rps")}

// 可以修改 manage 配置的执行器（创建实例时登记 pauser）
var allowManageExec = [][]byte{[]byte("manage"), []byte("registry")}

/*
权限控制规则:
1. 执行器只能修改执行器下面的 key
2. 能修改 coins 下面 exec key 的数据（托管账户）
3. allowDepositExec 可以修改 coins 账户
*/
func isAllowKeyWrite(key, txexecer []byte) bool {
	keyexecer, err := findExecer(key)
	if err != nil {
		elog.Error("find execer ", "err", err)
		return false
	}
	//其他合约可以修改自己合约内部
	if bytes.Equal(keyexecer, txexecer) {
		return true
	}
	realExecer := types.GetRealExecName(txexecer)
	if bytes.Equal(keyexecer, execerCoins) {
		if isExecKey(key) {
			return true
		}
		for _, execer := range allowDepositExec {
			if bytes.Equal(realExecer, execer) {
				return true
			}
		}
		return false
	}
	if bytes.Equal(keyexecer, execerManage) {
		for _, execer := range allowManageExec {
			if bytes.Equal(realExecer, execer) {
				return true
			}
		}
	}
	return false
}

// mavl-coins-exec-xxx
func isExecKey(key []byte) bool {
	start := 0
	for i := len(commonPrefix); i < len(key); i++ {
		if key[i] == '-' {
			if start > 0 {
				return bytes.Equal(key[start:i], bytesExec)
			}
			start = i + 1
		}
	}
	return false
}

func findExecer(key []byte) (execer []byte, err error) {
	if !bytes.HasPrefix(key, commonPrefix) {
		return nil, types.ErrMavlKeyNotStartWithMavl
	}
	for i := len(commonPrefix); i < len(key); i++ {
		if key[i] == '-' {
			return key[len(commonPrefix):i], nil
		}
	}
	return nil, types.ErrNoExecerInMavlKey
}

func isAllowLocalKey(key []byte) error {
	if !bytes.HasPrefix(key, localPrefix) {
		return types.ErrNotAllowLocalKey
	}
	return nil
}
