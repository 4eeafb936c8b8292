package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clawdcat/mintboard/internal/common"
	"github.com/clawdcat/mintboard/pkg/errorx"
	"github.com/clawdcat/mintboard/pkg/router"
	"github.com/clawdcat/mintboard/pkg/xcontext"
)

func WithStartTime() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return xcontext.WithStartTime(ctx, time.Now()), nil
	}
}

func errorCode(ctx context.Context) int {
	err := xcontext.Error(ctx)
	if err == nil {
		return 0
	}

	var errx errorx.Error
	if errors.As(err, &errx) {
		return int(errx.Code)
	}

	return -1
}

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return
		}

		path := req.URL.Path
		code := fmt.Sprint(errorCode(ctx))

		common.PromCounters[common.HTTPRequestTotal].WithLabelValues(path, code).Inc()

		if startTime := xcontext.StartTime(ctx); !startTime.IsZero() {
			common.PromHistograms[common.HTTPRequestDurationSeconds].
				WithLabelValues(path, code).
				Observe(time.Since(startTime).Seconds())
		}
	}
}
