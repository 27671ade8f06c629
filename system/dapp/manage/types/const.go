// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// ManageActionModifyConfig manager action
const (
	ManageActionModifyConfig = uint32(iota + 1)
	ManageActionPause
	ManageActionUnpause
)

// TyLogModifyConfig log
const (
	TyLogModifyConfig = uint32(900)
	TyLogPause        = uint32(901)
	TyLogUnpause      = uint32(902)
)

// OpAdd config op
const (
	OpAdd    = "add"
	OpDelete = "delete"
)

// 查询接口
const (
	FuncNameGetConfigItem = "GetConfigItem"
	FuncNameGetPauseState = "GetPauseState"
)
