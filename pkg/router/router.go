package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. Returning an error skips the
// handler and the error is written as the response.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written.
type CloserFunc func(ctx context.Context)

type RawHandlerFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request)

type Router struct {
	engine *gin.Engine
	inner  gin.IRouter

	// rootCtx carries the configs, logger and database of every request.
	rootCtx context.Context

	befores []MiddlewareFunc
	afters  []CloserFunc
}

func New(ctx context.Context) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		engine:  engine,
		inner:   engine,
		rootCtx: ctx,
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

// Raw registers a handler that writes its own response, e.g. a websocket
// upgrade. Middlewares and closers are not applied.
func (r *Router) Raw(method, pattern string, handler RawHandlerFunc) {
	r.inner.Handle(method, pattern, func(c *gin.Context) {
		handler(r.requestContext(c), c.Writer, c.Request)
	})
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(closer CloserFunc) {
	r.afters = append(r.afters, closer)
}

// Group shares the parent's middlewares registered so far.
func (r *Router) Group(pattern string) *Router {
	return &Router{
		engine:  r.engine,
		inner:   r.inner.Group(pattern),
		rootCtx: r.rootCtx,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]CloserFunc{}, r.afters...),
	}
}

func (r *Router) Handler(allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
		AllowCredentials: true,
	}).Handler(r.engine)
}
