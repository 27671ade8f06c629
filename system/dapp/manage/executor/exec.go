// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
)

// Exec_Modify 修改配置项
func (c *Manage) Exec_Modify(payload *mty.ModifyConfig, tx *types.Transaction, index int) (*types.Receipt, error) {
	clog.Info("manage.Exec", "start index", index)
	action := newAction(c, tx, index)
	return action.modifyConfig(payload)
}

// Exec_Pause 暂停执行器
func (c *Manage) Exec_Pause(payload *mty.Pause, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(c, tx, index)
	return action.setPaused(payload.Execer, true)
}

// Exec_Unpause 恢复执行器
func (c *Manage) Exec_Unpause(payload *mty.Unpause, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(c, tx, index)
	return action.setPaused(payload.Execer, false)
}
