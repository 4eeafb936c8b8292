package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clawdcat/mintboard/pkg/errorx"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Value string `form:"value" json:"value"`
}

type echoResponse struct {
	Value string `json:"value"`
}

type envelope struct {
	Code  int64           `json:"code"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*Router, *[]error) {
	gin.SetMode(gin.TestMode)

	var closed []error
	r := New(context.Background())
	r.After(func(ctx context.Context) {
		closed = append(closed, xcontext.Error(ctx))
	})

	GET(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		if req.Value == "" {
			return nil, errorx.New(errorx.BadRequest, "Empty value")
		}
		return &echoResponse{Value: req.Value}, nil
	})

	POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		if req.Value == "panic" {
			return nil, errors.New("internal detail")
		}
		return &echoResponse{Value: strings.ToUpper(req.Value)}, nil
	})

	return r, &closed
}

func serve(r *Router, req *http.Request) envelope {
	w := httptest.NewRecorder()
	r.Handler([]string{"*"}).ServeHTTP(w, req)

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		panic(err)
	}

	return resp
}

func TestRouter_GET(t *testing.T) {
	r, closed := newTestRouter(t)

	resp := serve(r, httptest.NewRequest(http.MethodGet, "/echo?value=abc", nil))
	require.Equal(t, int64(0), resp.Code)
	require.JSONEq(t, `{"value":"abc"}`, string(resp.Data))

	resp = serve(r, httptest.NewRequest(http.MethodGet, "/echo", nil))
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
	require.Equal(t, "Empty value", resp.Error)

	require.Len(t, *closed, 2)
	require.NoError(t, (*closed)[0])
	require.Error(t, (*closed)[1])
}

func TestRouter_POST(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"value":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := serve(r, req)
	require.Equal(t, int64(0), resp.Code)
	require.JSONEq(t, `{"value":"ABC"}`, string(resp.Data))

	// Errors that are not errorx.Error do not leak their message.
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"value":"panic"}`))
	resp = serve(r, req)
	require.Equal(t, int64(errorx.Unknown.Code), resp.Code)
	require.Equal(t, errorx.Unknown.Message, resp.Error)

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{bad json`))
	resp = serve(r, req)
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
}

func TestRouter_Before(t *testing.T) {
	r, _ := newTestRouter(t)
	r.Before(func(ctx context.Context) (context.Context, error) {
		return ctx, errorx.New(errorx.Unavailable, "Maintenance")
	})

	resp := serve(r, httptest.NewRequest(http.MethodGet, "/echo?value=abc", nil))
	require.Equal(t, int64(errorx.Unavailable), resp.Code)
	require.Equal(t, "Maintenance", resp.Error)
}
