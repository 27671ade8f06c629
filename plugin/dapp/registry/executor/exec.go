// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rgty "github.com/33cn/rps/plugin/dapp/registry/types"
	"github.com/33cn/rps/types"
)

// Exec_Create 登记实例
func (r *Registry) Exec_Create(payload *rgty.CreateNamedGame, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(r, tx)
	return action.create(payload)
}

// ExecLocal_Create 名称索引，用于分页列出实例
func (r *Registry) ExecLocal_Create(payload *rgty.CreateNamedGame, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != rgty.TyLogGameCreated {
			continue
		}
		var created rgty.ReceiptGameCreated
		if err := types.Decode(item.Log, &created); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{Key: calcNameIndexKey(created.Name), Value: []byte(created.Name)})
	}
	return set, nil
}

// Query_Lookup 按名称查询实例
func (r *Registry) Query_Lookup(req *rgty.ReqLookup) (types.Message, error) {
	return Lookup(r.GetStateDB(), req.Name)
}

// Query_ListInstances 分页列出实例
func (r *Registry) Query_ListInstances(req *rgty.ReqListInstances) (types.Message, error) {
	return listInstances(r.GetLocalDB(), r.GetStateDB(), req)
}
