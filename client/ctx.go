// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client 命令行使用的本地执行环境，打开数据目录执行交易或者查询
package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/types"
)

var clog = log.New("module", "client")

// LoadConfig 读取配置文件，文件不存在时使用默认配置
func LoadConfig(conf string) (*types.Config, error) {
	if _, err := os.Stat(conf); os.IsNotExist(err) {
		clog.Warn("config file not exist, use default", "conf", conf)
		return types.ParseCfgString(types.DefaultCfgString)
	}
	return types.InitCfg(conf)
}

// Open 打开配置中的数据库
func Open(conf string) (*executor.Executor, error) {
	cfg, err := LoadConfig(conf)
	if err != nil {
		return nil, err
	}
	return executor.New(cfg)
}

// Callback a callback function
type Callback func(res interface{}) (interface{}, error)

// ExecCtx 一次命令行调用：发送交易或者查询
type ExecCtx struct {
	Conf     string
	Execer   string
	FuncName string
	Params   types.Message
	Tx       *types.Transaction
	cb       Callback
}

// NewQueryCtx 查询执行器
func NewQueryCtx(conf, execer, funcname string, params types.Message) *ExecCtx {
	return &ExecCtx{
		Conf:     conf,
		Execer:   execer,
		FuncName: funcname,
		Params:   params,
	}
}

// NewTxCtx 执行交易
func NewTxCtx(conf string, tx *types.Transaction) *ExecCtx {
	return &ExecCtx{
		Conf:   conf,
		Execer: string(tx.Execer),
		Tx:     tx,
	}
}

// SetResultCb 格式化结果
func (c *ExecCtx) SetResultCb(cb Callback) {
	c.cb = cb
}

// RunResult 执行并返回（格式化后的）结果
func (c *ExecCtx) RunResult() (interface{}, error) {
	exec, err := Open(c.Conf)
	if err != nil {
		return nil, err
	}
	defer exec.Close()
	var res interface{}
	if c.Tx != nil {
		result, err := exec.ExecTx(c.Tx)
		if err != nil {
			return nil, err
		}
		res = DecodeTxResult(result)
	} else {
		res, err = exec.Query(c.Execer, c.FuncName, c.Params)
		if err != nil {
			return nil, err
		}
	}
	if c.cb != nil {
		return c.cb(res)
	}
	return res, nil
}

// Run 执行并以 json 输出结果
func (c *ExecCtx) Run() {
	result, err := c.RunResult()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	PrintJSON(result)
}

// PrintJSON json 格式输出
func PrintJSON(result interface{}) {
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
