// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	rgty "github.com/33cn/rps/plugin/dapp/registry/types"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	manage "github.com/33cn/rps/system/dapp/manage/executor"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// 实例登记之后不会修改，按 (状态数据库, 名称) 缓存
var instanceCache *lru.Cache

func init() {
	var err error
	instanceCache, err = lru.New(1024)
	if err != nil {
		panic(err)
	}
	drivers.RegisterCloseHook(purgeCache)
}

// purgeCache 删除 db 关闭之后留在缓存中的实例
func purgeCache(db dbm.KV) {
	for _, k := range instanceCache.Keys() {
		if key, ok := k.(cacheKey); ok && key.db == db {
			instanceCache.Remove(k)
		}
	}
}

type cacheKey struct {
	db   dbm.KV
	name string
}

// InstanceKey 实例在状态数据库中的 key
func InstanceKey(name string) []byte {
	return []byte("mavl-" + rgty.RegistryX + "-" + name)
}

func calcNameIndexKey(name string) []byte {
	return []byte("LODB-" + rgty.RegistryX + "-name:" + name)
}

func calcNameIndexPrefix() []byte {
	return []byte("LODB-" + rgty.RegistryX + "-name:")
}

// Lookup 按名称查询实例，不存在返回 ErrInstanceNotFound
func Lookup(db dbm.KV, name string) (*rgty.Instance, error) {
	if v, ok := instanceCache.Get(cacheKey{db, name}); ok {
		return v.(*rgty.Instance), nil
	}
	inst, err := readInstance(db, name)
	if err != nil {
		return nil, err
	}
	instanceCache.Add(cacheKey{db, name}, inst)
	return inst, nil
}

func readInstance(db dbm.KV, name string) (*rgty.Instance, error) {
	value, err := db.Get(InstanceKey(name))
	if err != nil {
		if isNotFound(err) {
			return nil, errors.Wrap(rgty.ErrInstanceNotFound, name)
		}
		return nil, err
	}
	var inst rgty.Instance
	if err := types.Decode(value, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// 直接使用 dbm.DB 时返回 ErrNotFoundInDb
func isNotFound(err error) bool {
	cause := errors.Cause(err)
	return cause == types.ErrNotFound || cause == dbm.ErrNotFoundInDb
}

// CheckName 名称不能为空，不能包含执行器名称以及 key 中使用的分隔符
func CheckName(name string) error {
	if len(name) == 0 {
		return errors.Wrap(rty.ErrInvalidArgument, "empty name")
	}
	if len(name) > rgty.MaxNameLength {
		return errors.Wrapf(rty.ErrInvalidArgument, "name longer than %d", rgty.MaxNameLength)
	}
	if strings.ContainsAny(name, ".-: ") {
		return errors.Wrapf(rty.ErrInvalidArgument, "name %q contains separator", name)
	}
	return nil
}

type action struct {
	cfg       *types.Config
	db        dbm.KV
	txhash    []byte
	fromaddr  common.Address
	value     *uint256.Int
	blocktime int64
}

func newAction(r *Registry, tx *types.Transaction) *action {
	var cfg *types.Config
	if api := r.GetAPI(); api != nil {
		cfg = api.GetConfig()
	}
	return &action{cfg, r.GetStateDB(), tx.Hash(), tx.From, tx.GetValue(), r.GetBlockTime()}
}

func (a *action) create(create *rgty.CreateNamedGame) (*types.Receipt, error) {
	if !a.value.IsZero() {
		return nil, errors.Wrap(rty.ErrValueMismatch, "registry is not payable")
	}
	if err := CheckName(create.Name); err != nil {
		rlog.Error("create", "from", a.fromaddr, "name", create.Name, "err", err)
		return nil, err
	}
	err := rty.CheckTerms(a.cfg, create.Creator, create.Opponent, create.Duration, create.Bet)
	if err != nil {
		rlog.Error("create", "from", a.fromaddr, "name", create.Name, "err", err)
		return nil, err
	}
	_, err = readInstance(a.db, create.Name)
	if err == nil {
		rlog.Error("create", "from", a.fromaddr, "name", create.Name, "err", rgty.ErrNameTaken)
		return nil, errors.Wrap(rgty.ErrNameTaken, create.Name)
	}
	if errors.Cause(err) != rgty.ErrInstanceNotFound {
		return nil, err
	}

	execer := rgty.InstanceExecer(create.Name)
	inst := &rgty.Instance{
		Name:       create.Name,
		Execer:     execer,
		ExecAddr:   account.ExecAddress(execer),
		Owner:      a.fromaddr,
		Creator:    create.Creator,
		Opponent:   create.Opponent,
		Duration:   create.Duration,
		Bet:        create.Bet,
		CreateTime: uint64(a.blocktime),
		TxHash:     a.txhash,
	}
	// owner 可以暂停自己的实例
	receipt, err := manage.AddPauser(a.db, execer, a.fromaddr)
	if err != nil {
		return nil, err
	}
	key := InstanceKey(create.Name)
	value := types.Encode(inst)
	if err := a.db.Set(key, value); err != nil {
		return nil, err
	}
	kv := append(receipt.KV, &types.KeyValue{Key: key, Value: value})
	logs := append(receipt.Logs, &types.ReceiptLog{
		Ty: rgty.TyLogGameCreated,
		Log: types.Encode(&rgty.ReceiptGameCreated{
			Owner:    inst.Owner,
			Name:     inst.Name,
			Execer:   inst.Execer,
			ExecAddr: inst.ExecAddr,
		}),
	})
	rlog.Info("create", "name", inst.Name, "owner", inst.Owner, "creator", inst.Creator, "opponent", inst.Opponent)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func listInstances(localdb dbm.KVDB, statedb dbm.KV, req *rgty.ReqListInstances) (*rgty.ReplyInstances, error) {
	count := int32(rty.DefaultCount)
	if req.Count > 0 && req.Count <= uint32(rty.MaxCount) {
		count = int32(req.Count)
	}
	var key []byte
	if req.Name != "" {
		key = calcNameIndexKey(req.Name)
	}
	reply := &rgty.ReplyInstances{}
	values, err := localdb.List(calcNameIndexPrefix(), key, count, int32(req.Direction))
	if errors.Cause(err) == types.ErrNotFound {
		return reply, nil
	}
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		inst, err := Lookup(statedb, string(value))
		if err != nil {
			rlog.Error("listInstances", "name", string(value), "err", err)
			continue
		}
		reply.Instances = append(reply.Instances, inst)
	}
	return reply, nil
}
