// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Query_GetGame 按 SessionID 查询
func (r *RPS) Query_GetGame(req *rty.ReqGame) (types.Message, error) {
	return readGame(r.GetStateDB(), r.GetCurrentExecName(), req.SessionID)
}

// Query_GetGameByCommitment 按 commitment 查询
func (r *RPS) Query_GetGameByCommitment(req *rty.ReqGameByCommitment) (types.Message, error) {
	return readGameByCommitment(r.GetStateDB(), r.GetCurrentExecName(), req.Commitment)
}

// Query_ListGames 按状态（以及地址）分页查询
func (r *RPS) Query_ListGames(req *rty.ReqListGames) (types.Message, error) {
	return listGames(r.GetLocalDB(), r.GetStateDB(), r.GetCurrentExecName(), req)
}

// Query_CountGames 按状态（以及地址）统计
func (r *RPS) Query_CountGames(req *rty.ReqCountGames) (types.Message, error) {
	if err := checkStatus(req.Status); err != nil {
		return nil, err
	}
	execer := r.GetCurrentExecName()
	prefix := calcStatusIndexPrefix(execer, req.Status)
	if req.Addr != (common.Address{}) {
		prefix = calcAddrIndexPrefix(execer, req.Status, req.Addr)
	}
	return &rty.ReplyCount{Count: uint64(r.GetPrefixCount(prefix))}, nil
}

// Query_GetEscrow 托管账户，Balance 可以提取，Frozen 锁定在未结束的游戏中
func (r *RPS) Query_GetEscrow(req *rty.ReqEscrow) (types.Message, error) {
	return r.GetCoinsAccount().LoadExecAccount(req.Addr, r.GetExecAddress()), nil
}

// Query_ComputeCommitment 计算 commitment
func (r *RPS) Query_ComputeCommitment(req *rty.ReqComputeCommitment) (types.Message, error) {
	h, err := rty.ComputeCommitment(req.Addr, req.Nonce, req.Move)
	if err != nil {
		return nil, err
	}
	return &rty.ReplyCommitment{Commitment: h}, nil
}

func checkStatus(status uint32) error {
	if status < rty.GameStatusCreated || status > rty.GameStatusPenalized {
		return errors.Wrapf(rty.ErrInvalidArgument, "status %d, the status only fill in 1-5", status)
	}
	return nil
}

//分页查询
func listGames(localdb dbm.KVDB, statedb dbm.KV, execer string, req *rty.ReqListGames) (*rty.ReplyGameList, error) {
	if err := checkStatus(req.Status); err != nil {
		return nil, err
	}
	count := rty.DefaultCount
	if req.Count > 0 && req.Count <= uint32(rty.MaxCount) {
		count = int32(req.Count)
	}
	direction := dbm.ListDESC
	if int32(req.Direction) == dbm.ListASC {
		direction = dbm.ListASC
	}
	var prefix, key []byte
	if req.Addr == (common.Address{}) {
		prefix = calcStatusIndexPrefix(execer, req.Status)
		if req.Index > 0 {
			key = calcStatusIndexKey(execer, req.Status, req.Index)
		}
	} else {
		prefix = calcAddrIndexPrefix(execer, req.Status, req.Addr)
		if req.Index > 0 {
			key = calcAddrIndexKey(execer, req.Status, req.Addr, req.Index)
		}
	}
	reply := &rty.ReplyGameList{}
	values, err := localdb.List(prefix, key, count, direction)
	if errors.Cause(err) == types.ErrNotFound {
		return reply, nil
	}
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		var record indexRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		//安全批量查询方式,防止因为脏数据导致查询接口奔溃
		game, err := readGame(statedb, execer, record.SessionID)
		if err != nil {
			glog.Error("listGames", "session", record.SessionID, "err", err)
			continue
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}
