// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrNotFound key 不存在
	ErrNotFound = errors.New("ErrNotFound")
	// ErrDecode 反序列化失败
	ErrDecode = errors.New("ErrDecode")
	// ErrInvalidParam 参数错误
	ErrInvalidParam = errors.New("ErrInvalidParam")
	// ErrActionNotSupport action 不支持
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	// ErrQueryNotSupport 查询接口不存在
	ErrQueryNotSupport = errors.New("ErrQueryNotSupport")
	// ErrExecNotFound 执行器不存在
	ErrExecNotFound = errors.New("ErrExecNotFound")
	// ErrExecNameNotAllow 执行器名称不合法
	ErrExecNameNotAllow = errors.New("ErrExecNameNotAllow")
	// ErrExecRegistered 执行器重复注册
	ErrExecRegistered = errors.New("ErrExecRegistered")
	// ErrNoBalance 余额不足
	ErrNoBalance = errors.New("ErrNoBalance")
	// ErrSendSameToRecv 收款和付款地址相同
	ErrSendSameToRecv = errors.New("ErrSendSameToRecv")
	// ErrAmount 金额不合法
	ErrAmount = errors.New("ErrAmount")
	// ErrPaused 执行器已被暂停
	ErrPaused = errors.New("ErrPaused")
	// ErrNoPrivilege 没有管理权限
	ErrNoPrivilege = errors.New("ErrNoPrivilege")
	// ErrDBType 不支持的数据库类型
	ErrDBType = errors.New("ErrDBType")
	// ErrLogType 未注册的日志类型
	ErrLogType = errors.New("ErrLogType")
	// ErrNotAllowKey 执行器写了不属于自己的 key
	ErrNotAllowKey = errors.New("ErrNotAllowKey")
	// ErrNotAllowMemSetKey 写入状态数据库的 key 没有出现在收据中
	ErrNotAllowMemSetKey = errors.New("ErrNotAllowMemSetKey")
	// ErrNotAllowLocalKey 本地数据库的 key 必须以 LODB- 开头
	ErrNotAllowLocalKey = errors.New("ErrNotAllowLocalKey")
	// ErrMavlKeyNotStartWithMavl 状态数据库的 key 必须以 mavl- 开头
	ErrMavlKeyNotStartWithMavl = errors.New("ErrMavlKeyNotStartWithMavl")
	// ErrNoExecerInMavlKey key 中找不到执行器名称
	ErrNoExecerInMavlKey = errors.New("ErrNoExecerInMavlKey")
)
