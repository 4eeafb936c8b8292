package router

import (
	"context"
	"net/http"

	"github.com/clawdcat/mintboard/pkg/errorx"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

func (r *Router) requestContext(c *gin.Context) context.Context {
	return xcontext.WithHTTPRequest(r.rootCtx, c.Request)
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := router.requestContext(c)

		var err error
		for _, middleware := range router.befores {
			if ctx, err = middleware(ctx); err != nil {
				break
			}
		}

		var resp *Response
		if err == nil {
			req := new(Request)
			if bindErr := bind(c, method, req); bindErr != nil {
				err = errorx.New(errorx.BadRequest, "Invalid request: %v", bindErr)
			} else {
				resp, err = handler(ctx, req)
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			c.JSON(http.StatusOK, newErrorResponse(err))
		} else {
			c.JSON(http.StatusOK, newResponse(resp))
		}

		for _, closer := range router.afters {
			closer(ctx)
		}
	}
}

func bind(c *gin.Context, method string, req any) error {
	switch method {
	case http.MethodGet:
		return c.ShouldBindQuery(req)
	case http.MethodPost:
		if c.Request.ContentLength == 0 {
			return nil
		}
		return c.ShouldBindJSON(req)
	default:
		return errorx.New(errorx.BadRequest, "Unsupported method %s", method)
	}
}
