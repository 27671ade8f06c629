// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
)

// Query_GetConfigItem 查询配置项
func (c *Manage) Query_GetConfigItem(in *mty.ReqConfigItem) (types.Message, error) {
	return mty.NewGuard(c.GetStateDB()).GetConfigItem(in.Key)
}

// Query_GetPauseState 查询执行器暂停状态
func (c *Manage) Query_GetPauseState(in *mty.ReqPauseState) (types.Message, error) {
	return mty.NewGuard(c.GetStateDB()).GetPauseState(in.Execer)
}
