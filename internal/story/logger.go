package story

import (
	"context"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

// ContextWithLogger 把请求级 logger 放入 context
func ContextWithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry)
}

// Logger 返回 ctx 中的 logger，没有时返回标准 logger
func Logger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok && entry != nil {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
