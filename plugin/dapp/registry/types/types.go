// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 游戏实例登记：名称到 rps.<name> 执行器的映射
package types

import (
	"errors"

	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	// RegistryX 执行器名称
	RegistryX = "registry"
)

// action 类型
const (
	RegistryActionCreate = uint32(1)
)

// log 类型
const (
	TyLogGameCreated = uint32(801)
)

// 查询接口
const (
	FuncNameLookup        = "Lookup"
	FuncNameListInstances = "ListInstances"
)

// MaxNameLength 实例名称最大长度
const MaxNameLength = 32

var (
	// ErrNameTaken 名称已经被使用
	ErrNameTaken = errors.New("ErrNameTaken")
	// ErrInstanceNotFound 名称没有登记
	ErrInstanceNotFound = errors.New("ErrInstanceNotFound")
)

// CreateNamedGame 创建实例，调用者成为实例的 owner 以及 pauser
type CreateNamedGame struct {
	Name     string
	Creator  common.Address
	Opponent common.Address
	Duration uint64
	Bet      *uint256.Int
}

// Instance 登记的实例，实例中的游戏必须符合这些条件
type Instance struct {
	Name       string
	Execer     string
	ExecAddr   common.Address
	Owner      common.Address
	Creator    common.Address
	Opponent   common.Address
	Duration   uint64
	Bet        *uint256.Int
	CreateTime uint64
	TxHash     []byte
}

// GetBet never returns nil
func (i *Instance) GetBet() *uint256.Int {
	if i == nil || i.Bet == nil {
		return new(uint256.Int)
	}
	return i.Bet
}

// ReceiptGameCreated 创建日志
type ReceiptGameCreated struct {
	Owner    common.Address
	Name     string
	Execer   string
	ExecAddr common.Address
}

// ReqLookup 按名称查询
type ReqLookup struct {
	Name string
}

// ReqListInstances 按名称分页，Name 为上一页最后一个名称
type ReqListInstances struct {
	Name      string
	Count     uint32
	Direction uint32
}

// ReplyInstances 实例列表
type ReplyInstances struct {
	Instances []*Instance
}

// RegistryType 执行器类型
type RegistryType struct {
	*types.ExecTypeBase
}

var registryType = &RegistryType{
	ExecTypeBase: types.NewExecTypeBase(RegistryX, []*types.ActionInfo{
		{Name: "Create", Ty: RegistryActionCreate, Value: &CreateNamedGame{}},
	}),
}

func init() {
	types.RegisterLog(TyLogGameCreated, "LogGameCreated", &ReceiptGameCreated{})
}

// NewType registry 执行器类型
func NewType() *RegistryType {
	return registryType
}

// InstanceExecer 实例对应的执行器名称
func InstanceExecer(name string) string {
	return "rps." + name
}
