package logger

import "os"

func SetupLogger(logLevel string, logJSON, logSource bool) Logger {
	var level LogLevel
	switch LogLevel(logLevel) {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel, DisabledLevel:
		level = LogLevel(logLevel)
	default:
		level = InfoLevel
	}
	cfg := &Config{
		Level:      level,
		Output:     os.Stderr,
		JSON:       logJSON,
		AddSource:  logSource,
		TimeFormat: "15:04:05",
	}
	Init(cfg)
	return GetDefault()
}
