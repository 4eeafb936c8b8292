package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/clawdcat/mintboard/pkg/router"
	"github.com/clawdcat/mintboard/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return
		}

		info := fmt.Sprintf("%s | %s", req.Method, req.URL.Path)
		if startTime := xcontext.StartTime(ctx); !startTime.IsZero() {
			info = fmt.Sprintf("%s | %s", info, time.Since(startTime))
		}

		switch code := errorCode(ctx); {
		case code == 0:
			xcontext.Logger(ctx).Infof(info)
		case code > 0:
			xcontext.Logger(ctx).Warnf("%s | %d | %v", info, code, xcontext.Error(ctx))
		default:
			xcontext.Logger(ctx).Errorf("%s | %d | %v", info, code, xcontext.Error(ctx))
		}
	}
}
