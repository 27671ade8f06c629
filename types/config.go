// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 配置文件结构
type Config struct {
	Title   string
	Log     *Log
	Store   *Store
	Exec    *Exec
	Manage  *Manage
	Metrics *Metrics
	Genesis []*GenesisAlloc
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string
	LogConsoleLevel string
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32
	// 最多保存的历史日志文件个数
	MaxBackups uint32
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool
	// 是否打印调用源文件和行号
	CallerFile bool
	// 是否打印调用方法
	CallerFunction bool
}

// Store 状态数据库配置
type Store struct {
	// leveldb, gobadgerdb, memdb
	Driver  string
	DbPath  string
	DbCache int32
}

// Exec 执行器配置
type Exec struct {
	// 游戏最短持续时间（秒）
	MinDuration int64
	// 单个执行器的子配置 [exec.sub.xxx]
	Sub map[string]interface{}
}

// Manage 管理员配置
type Manage struct {
	SuperManager []string
}

// Metrics 度量配置
type Metrics struct {
	EnableMetrics bool
	// 周期性输出到日志的间隔（秒）
	Duration int64
}

// GenesisAlloc 创世分配，Amount 以 coin 为单位
type GenesisAlloc struct {
	Address string
	Amount  string
}

// DefaultMinDuration 默认的游戏最短持续时间
const DefaultMinDuration = 300

func initCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	fillDefault(&cfg)
	return &cfg, nil
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	// 未配置存储时只在内存中运行
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.MinDuration == 0 {
		cfg.Exec.MinDuration = DefaultMinDuration
	}
	if cfg.Manage == nil {
		cfg.Manage = &Manage{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
}

// ParseCfgString 解析配置字符串
func ParseCfgString(cfgstring string) (*Config, error) {
	return initCfgString(cfgstring)
}

// InitCfgString 解析配置字符串，失败 panic
func InitCfgString(cfgstring string) *Config {
	cfg, err := initCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return initCfgString(string(data))
}

// SubConfig 返回 [exec.sub.<name>] 的 json 编码，未配置返回 nil
func (c *Exec) SubConfig(name string) []byte {
	if c == nil || c.Sub == nil {
		return nil
	}
	v, ok := c.Sub[name]
	if !ok {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

// MustDecodeSub 把子配置解码到 v, 未配置时保持 v 不变
func (c *Exec) MustDecodeSub(name string, v interface{}) {
	data := c.SubConfig(name)
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		panic(err)
	}
}
