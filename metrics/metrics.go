// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器的度量数据以及周期性输出
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "rps metrics")

// 默认输出间隔（秒）
const defaultDuration = 60

// ExecMetrics 交易执行的度量
type ExecMetrics struct {
	Registry go_metrics.Registry
	TxTimer  go_metrics.Timer
	TxOk     go_metrics.Counter
	TxFail   go_metrics.Counter
	// 按 action 统计的成功次数
	actions map[string]go_metrics.Counter

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewExecMetrics 在独立的 registry 中注册执行器度量
func NewExecMetrics() *ExecMetrics {
	r := go_metrics.NewRegistry()
	return &ExecMetrics{
		Registry: r,
		TxTimer:  go_metrics.NewRegisteredTimer("rps.exec.tx", r),
		TxOk:     go_metrics.NewRegisteredCounter("rps.exec.ok", r),
		TxFail:   go_metrics.NewRegisteredCounter("rps.exec.fail", r),
		actions:  make(map[string]go_metrics.Counter),
		quit:     make(chan struct{}),
	}
}

// MarkAction 记录一次成功执行的 action, 调用方负责加锁
func (m *ExecMetrics) MarkAction(execer, action string) {
	name := fmt.Sprintf("rps.exec.action.%s.%s", execer, action)
	c, ok := m.actions[name]
	if !ok {
		c = go_metrics.GetOrRegisterCounter(name, m.Registry)
		m.actions[name] = c
	}
	c.Inc(1)
}

// Snapshot 当前所有度量的值，供命令行输出
func (m *ExecMetrics) Snapshot() map[string]interface{} {
	out := make(map[string]interface{})
	m.Registry.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case go_metrics.Counter:
			out[name] = metric.Count()
		case go_metrics.Timer:
			t := metric.Snapshot()
			out[name] = map[string]interface{}{
				"count": t.Count(),
				"mean":  time.Duration(t.Mean()).String(),
				"max":   time.Duration(t.Max()).String(),
			}
		}
	})
	return out
}

//StartMetrics 根据配置文件相关参数启动周期性输出，Stop 之后退出
func StartMetrics(cfg *types.Metrics, m *ExecMetrics) {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	duration := cfg.Duration
	if duration <= 0 {
		duration = defaultDuration
	}
	mlog.Info("StartMetrics with log", "duration", duration)
	m.done = make(chan struct{})
	go m.logLoop(time.Duration(duration) * time.Second)
}

func (m *ExecMetrics) logLoop(freq time.Duration) {
	defer close(m.done)
	ticker := time.NewTicker(freq)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mlog.Info("exec metrics", "snapshot", m.Snapshot())
		case <-m.quit:
			return
		}
	}
}

// Stop 停止周期性输出，可以重复调用
func (m *ExecMetrics) Stop() {
	m.stopOnce.Do(func() {
		close(m.quit)
	})
	if m.done != nil {
		<-m.done
	}
}
