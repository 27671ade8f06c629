// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/rps/client"
	_ "github.com/33cn/rps/system"
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var superAddr = common.HexToAddress("0x0000000000000000000000000000000000000a11")

func writeConf(t *testing.T) string {
	dir := t.TempDir()
	conf := filepath.Join(dir, "rps.toml")
	data := fmt.Sprintf(`
[store]
driver="leveldb"
dbPath=%q

[manage]
superManager=["0x0000000000000000000000000000000000000a11"]

[[genesis]]
address="0x0000000000000000000000000000000000000a11"
amount="12.5"
`, filepath.Join(dir, "datadir"))
	require.Nil(t, os.WriteFile(conf, []byte(data), 0644))
	return conf
}

func TestExecCtx(t *testing.T) {
	conf := writeConf(t)
	tx, err := client.CreateTx(mty.NewType(), mty.ManageX, "Pause", &mty.Pause{Execer: "rps"}, superAddr, nil)
	require.Nil(t, err)
	res, err := client.NewTxCtx(conf, tx).RunResult()
	require.Nil(t, err)
	result := res.(*client.TxResult)
	assert.Equal(t, uint64(1), result.Height)
	assert.Equal(t, "manage", result.Execer)
	assert.Equal(t, "pause", result.Action)
	assert.Equal(t, superAddr.Hex(), result.From)
	require.Len(t, result.Logs, 1)
	assert.Equal(t, "LogPause", result.Logs[0].Name)

	// 数据已经落盘，重新打开后可以查询
	ctx := client.NewQueryCtx(conf, mty.ManageX, mty.FuncNameGetPauseState, &mty.ReqPauseState{Execer: "rps"})
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		return res.(*mty.PauseState).Paused, nil
	})
	paused, err := ctx.RunResult()
	require.Nil(t, err)
	assert.Equal(t, true, paused)

	exec, err := client.Open(conf)
	require.Nil(t, err)
	defer exec.Close()
	acc := client.DecodeAccount(exec.GetAccount(superAddr))
	assert.Equal(t, "12.5", acc.Balance)
	assert.Equal(t, "0", acc.Frozen)
	assert.Equal(t, int64(1), exec.Height())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := client.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Nil(t, err)
	assert.Equal(t, types.DefaultMinDuration, int(cfg.Exec.MinDuration))
	assert.Len(t, cfg.Manage.SuperManager, 1)
}

func TestDecodeLog(t *testing.T) {
	l := client.DecodeLog(&types.ReceiptLog{Ty: 12345, Log: []byte{1, 2}})
	assert.Equal(t, "unknown", l.Name)
	assert.Equal(t, "0x0102", l.Log)
}
