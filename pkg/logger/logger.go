package logger

import (
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Init builds the package logger. Call once at startup before any other
// logger function.
func Init(environment string) {
	var l *zap.Logger
	var err error

	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	sugar = l.Sugar()
}

func ensure() *zap.SugaredLogger {
	if sugar == nil {
		l, _ := zap.NewDevelopment()
		sugar = l.Sugar()
	}
	return sugar
}

func Debug(msg string, keysAndValues ...any) {
	ensure().Debugw(msg, normalize(keysAndValues)...)
}

func Info(msg string, keysAndValues ...any) {
	ensure().Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	ensure().Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	ensure().Errorw(msg, normalize(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...any) {
	ensure().Fatalw(msg, normalize(keysAndValues)...)
}

func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

// normalize tolerates call sites that pass a bare error (or any odd trailing
// value) instead of a key-value pair.
func normalize(kv []any) []any {
	if len(kv)%2 == 0 {
		return kv
	}
	out := make([]any, 0, len(kv)+1)
	out = append(out, kv[:len(kv)-1]...)
	out = append(out, "detail", kv[len(kv)-1])
	return out
}
