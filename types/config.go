// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Config 配置文件的根结构
type Config struct {
	Title      string `toml:"title"`
	Log        *Log   `toml:"log"`
	Store      *Store `toml:"store"`
	LocalStore *Store `toml:"localStore"`
	Exec       *Exec  `toml:"exec"`
	Coins      *Coins `toml:"coins"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 数据库配置, 状态数据库和本地数据库共用
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Exec 执行器配置
type Exec struct {
	// 交易最低手续费, 0 表示不收手续费
	MinFee uint64 `toml:"minFee"`
	// 是否检查交易签名
	CheckSign bool `toml:"checkSign"`
	// 是否定时把metrics统计写入日志
	EnableMetrics bool `toml:"enableMetrics"`
	// 统计写入日志的间隔(秒)
	MetricsDuration int64 `toml:"metricsDuration"`
}

// Coins 原生币配置
type Coins struct {
	Symbol string `toml:"symbol"`
	// 创世地址
	Genesis string `toml:"genesis"`
	// 创世金额, 单位为最小精度
	GenesisAmount uint64 `toml:"genesisAmount"`
}

// DefaultConfig 默认配置, 内存数据库, 不收手续费
func DefaultConfig() *Config {
	return &Config{
		Title: "local",
		Log: &Log{
			Loglevel:        "error",
			LogConsoleLevel: "error",
			MaxFileSize:     300,
			MaxBackups:      100,
			MaxAge:          28,
			LocalTime:       true,
			Compress:        true,
		},
		Store:      &Store{Name: "state", Driver: "memdb", DbPath: "datadir", DbCache: 64},
		LocalStore: &Store{Name: "local", Driver: "memdb", DbPath: "datadir", DbCache: 64},
		Exec:       &Exec{MinFee: 0, CheckSign: true, MetricsDuration: 60},
		Coins:      &Coins{Symbol: "bty", GenesisAmount: 1e8 * Coin},
	}
}
