package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志轮转的默认参数，单个文件10MB，最多保留3个备份
const (
	DefaultMaxSize    = 10
	DefaultMaxBackups = 3
)

/*
无输入，输出一个Zap日志库的编码器配置

获取生产环境默认编码器配置后，修改日志级别的格式化方式为大写，修改时间的格式化方式为ISO8601格式
*/
func DefaultEncoderConfig() zapcore.EncoderConfig {
	var encoderConfig = zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderConfig
}

func DefaultEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(DefaultEncoderConfig())
}

/*
无输入，输出一个Zap日志库的选项列表

Error及以上级别的日志都会附带堆栈信息，便于定位抓取失败的位置，同时记录调用者的文件名和行号
*/
func DefaultOption() []zap.Option {
	var stackTraceLevel zap.LevelEnablerFunc = func(level zapcore.Level) bool {
		return level >= zapcore.ErrorLevel
	}
	return []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(stackTraceLevel),
	}
}

// 单次抓取产生的日志量很小，这里不压缩备份文件，保留的备份数量有上限
func DefaultLumberjackLogger() *lumberjack.Logger {
	return &lumberjack.Logger{
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		LocalTime:  true,
		Compress:   false,
	}
}
