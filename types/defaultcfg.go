// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// DefaultCfgString 本地测试使用的默认配置
var DefaultCfgString = `
Title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "debug"
logConsoleLevel = "info"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/rps.log"
# 单个日志文件的最大值（单位：兆）
maxFileSize = 300
# 最多保存的历史日志文件个数
maxBackups = 100
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地事件（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = true
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

[store]
# 数据库类型 leveldb, gobadgerdb, memdb
driver="leveldb"
dbPath="datadir"
dbCache=64

[exec]
# 游戏最短持续时间（秒）
minDuration=300

[exec.sub.rps]
# 单局最大下注（coin），0 表示不限制
maxBet="0"

[manage]
superManager=["0x0000000000000000000000000000000000000a11"]

[metrics]
enableMetrics=false
duration=60

[[genesis]]
address="0x0000000000000000000000000000000000000a11"
amount="100000000"
`
