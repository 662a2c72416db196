package logger

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	zlog *zap.Logger
	slog *zap.SugaredLogger
)

// Config 日志配置
type Config struct {
	Level      string
	Format     string // json / console
	File       string // 为空仅输出到标准输出
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func init() {
	// 未显式初始化时兜底，保证早期日志不丢
	l, _ := zap.NewProduction()
	replace(l)
}

// Init 按配置初始化全局日志
func Init(cfg Config) error {
	level := parseLevel(cfg.Level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "console") {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.File != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 10),
			MaxAge:     orDefault(cfg.MaxAgeDays, 30),
			Compress:   cfg.Compress,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)
	replace(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

func replace(l *zap.Logger) {
	zlog = l
	slog = l.Sugar()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Z 返回结构化 logger
func Z() *zap.Logger {
	return zlog
}

// S 返回 sugared logger
func S() *zap.SugaredLogger {
	return slog
}

// Debugw 键值对调试日志
func Debugw(msg string, kv ...interface{}) { slog.Debugw(msg, kv...) }

// Infow 键值对信息日志
func Infow(msg string, kv ...interface{}) { slog.Infow(msg, kv...) }

// Warnw 键值对告警日志
func Warnw(msg string, kv ...interface{}) { slog.Warnw(msg, kv...) }

// Errorw 键值对错误日志
func Errorw(msg string, kv ...interface{}) { slog.Errorw(msg, kv...) }

// StdLogger 适配标准库 logger 的组件
func StdLogger() *log.Logger {
	return zap.NewStdLog(zlog)
}

// Sync 刷新缓冲
func Sync() {
	_ = zlog.Sync()
}
