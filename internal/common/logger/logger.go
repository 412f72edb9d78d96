package logger

// Logger 日志接口
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	WithFields(fields map[string]interface{}) Logger
	WithField(key string, value interface{}) Logger
}

// NewLogger 创建Logger（默认使用logrus，format 传 "zap-json"/"zap-console" 时切到 zap）
func NewLogger(level, format, output, path string) (Logger, error) {
	switch format {
	case "zap-json":
		return NewZapLogger(level, "json", output, path)
	case "zap-console":
		return NewZapLogger(level, "console", output, path)
	default:
		return NewLogrusLogger(level, format, output, path)
	}
}
