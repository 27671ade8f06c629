// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 管理插件相关的定义
package types

import (
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ManageX defines a global string
	ManageX = "manage"
)

// ModifyConfig 修改数组类型的配置项
type ModifyConfig struct {
	Key   string
	Op    string
	Value string
}

// Pause 暂停执行器
type Pause struct {
	Execer string
}

// Unpause 恢复执行器
type Unpause struct {
	Execer string
}

// ConfigItem 数组类型的配置项
type ConfigItem struct {
	Key   string
	Addr  common.Address
	Value []string
}

// PauseState 执行器暂停状态
type PauseState struct {
	Execer string
	Paused bool
	Addr   common.Address
}

// ReceiptConfig 配置修改日志
type ReceiptConfig struct {
	Prev    *ConfigItem
	Current *ConfigItem
}

// ReqConfigItem 查询配置项
type ReqConfigItem struct {
	Key string
}

// ReqPauseState 查询暂停状态
type ReqPauseState struct {
	Execer string
}

// ManageType defines managetype
type ManageType struct {
	*types.ExecTypeBase
}

var manageType = &ManageType{
	ExecTypeBase: types.NewExecTypeBase(ManageX, []*types.ActionInfo{
		{Name: "Modify", Ty: ManageActionModifyConfig, Value: &ModifyConfig{}},
		{Name: "Pause", Ty: ManageActionPause, Value: &Pause{}},
		{Name: "Unpause", Ty: ManageActionUnpause, Value: &Unpause{}},
	}),
}

func init() {
	types.RegisterLog(TyLogModifyConfig, "LogModifyConfig", &ReceiptConfig{})
	types.RegisterLog(TyLogPause, "LogPause", &PauseState{})
	types.RegisterLog(TyLogUnpause, "LogUnpause", &PauseState{})
}

// NewType manage 执行器类型
func NewType() *ManageType {
	return manageType
}

// PauserKey 执行器 pauser 列表的配置项名称
func PauserKey(execer string) string {
	return "pausers:" + execer
}

// ManageKey 配置项在状态数据库中的 key
func ManageKey(key string) []byte {
	return []byte("mavl-manage-" + key)
}

// PauseKey 暂停状态在状态数据库中的 key
func PauseKey(execer string) []byte {
	return []byte("mavl-manage-paused-" + execer)
}
