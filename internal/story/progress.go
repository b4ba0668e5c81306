package story

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "storyforge/story"

// StageReport 一次阶段执行的结果
type StageReport struct {
	Label   string
	Index   int
	Total   int
	Elapsed time.Duration
	Err     error
}

// Observer 每个阶段结束后接收报告
type Observer func(StageReport)

// WithProgress 为 fn 加上进度日志、追踪 span 和耗时报告，不改变输入输出
func WithProgress[S any](fn func(context.Context, S) (S, error), label string, index, total int, observers ...Observer) func(context.Context, S) (S, error) {
	return func(ctx context.Context, in S) (S, error) {
		log := Logger(ctx).WithFields(logrus.Fields{
			"stage": label,
			"index": index,
			"total": total,
		})
		ctx, span := otel.Tracer(tracerName).Start(ctx, label, trace.WithAttributes(
			attribute.Int("stage.index", index),
			attribute.Int("stage.total", total),
		))
		defer span.End()

		log.Infof("[%d/%d] Starting: %s", index, total, label)
		start := time.Now()
		out, err := fn(ctx, in)
		elapsed := time.Since(start)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.WithError(err).WithField("elapsed", elapsed).Errorf("[%d/%d] Failed: %s after %.2f seconds", index, total, label, elapsed.Seconds())
		} else {
			log.WithField("elapsed", elapsed).Infof("[%d/%d] Completed: %s in %.2f seconds", index, total, label, elapsed.Seconds())
		}

		report := StageReport{Label: label, Index: index, Total: total, Elapsed: elapsed, Err: err}
		for _, o := range observers {
			o(report)
		}
		return out, err
	}
}
