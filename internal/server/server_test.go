package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/sqlpage/config"
	"github.com/ncobase/sqlpage/ctxutil"
	"github.com/ncobase/sqlpage/ecode"
	"github.com/ncobase/sqlpage/paging"
	"github.com/ncobase/sqlpage/source"
	"github.com/ncobase/sqlpage/source/memory"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type pageBody struct {
	Items     []int  `json:"items"`
	NextToken string `json:"next_page_token"`
	Total     int64  `json:"total_items"`
	HasNext   bool   `json:"has_next"`
}

type failBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newTestRouter(src paging.Source[any], pinger Pinger) *gin.Engine {
	p := paging.NewPaginator(src, paging.WithDefaultPageSize(4), paging.WithMaxPageSize(10))
	cfg := &config.Server{Host: "127.0.0.1", Port: 0}
	return New(cfg, gin.TestMode, NewHandler(p, pinger, nil), nil).SetupRouter()
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestListPageTraversal(t *testing.T) {
	r := newTestRouter(source.Any[int](memory.New(memory.Seq(10))), nil)

	var seen []int
	target := "/v1/pages"
	for i := 0; i < 5; i++ {
		w := get(t, r, target)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var body pageBody
		decode(t, w, &body)
		if body.Total != 10 {
			t.Errorf("total_items = %d", body.Total)
		}
		seen = append(seen, body.Items...)
		if !body.HasNext {
			if body.NextToken != "" {
				t.Errorf("terminal page carries token %q", body.NextToken)
			}
			break
		}
		target = "/v1/pages?page_token=" + url.QueryEscape(body.NextToken)
	}

	if len(seen) != 10 {
		t.Fatalf("saw %d items, want 10: %v", len(seen), seen)
	}
	for i, v := range seen {
		if v != i {
			t.Fatalf("item %d = %d", i, v)
		}
	}
}

func TestListPageSizeCap(t *testing.T) {
	r := newTestRouter(source.Any[int](memory.New(memory.Seq(50))), nil)

	var body pageBody
	decode(t, get(t, r, "/v1/pages?page_size=40"), &body)
	if len(body.Items) != 10 {
		t.Errorf("got %d items, want capped 10", len(body.Items))
	}
}

func TestListPageErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    paging.Source[any]
		target string
		status int
		code   int
	}{
		{"bad token", source.Any[int](memory.New(memory.Seq(3))), "/v1/pages?page_token=b:%21%21", http.StatusBadRequest, ecode.InvalidToken},
		{"negative size", source.Any[int](memory.New(memory.Seq(3))), "/v1/pages?page_size=-1", http.StatusBadRequest, ecode.ParamErr},
		{"non numeric size", source.Any[int](memory.New(memory.Seq(3))), "/v1/pages?page_size=ten", http.StatusBadRequest, ecode.ParamErr},
		{"source failure", source.Any[int](memory.New[int](nil, memory.WithError(errors.New("db down")))), "/v1/pages", http.StatusServiceUnavailable, ecode.ServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, newTestRouter(tt.src, nil), tt.target)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.status, w.Body.String())
			}
			var body failBody
			decode(t, w, &body)
			if body.Code != tt.code {
				t.Errorf("code = %d, want %d", body.Code, tt.code)
			}
		})
	}
}

func TestUnparsableQuery(t *testing.T) {
	r := newTestRouter(source.Any[int](memory.New(memory.Seq(3))), nil)

	w := get(t, r, "/v1/pages?page_size=ten")
	var body failBody
	decode(t, w, &body)
	if body.Message != "query invalid" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestSourceFailureHidesCause(t *testing.T) {
	src := source.Any[int](memory.New[int](nil, memory.WithError(errors.New("password=hunter2"))))
	w := get(t, newTestRouter(src, nil), "/v1/pages")
	var body failBody
	decode(t, w, &body)
	if body.Message != ecode.Text(ecode.ServiceUnavailable) {
		t.Errorf("message = %q", body.Message)
	}
}

func TestDecodeToken(t *testing.T) {
	r := newTestRouter(source.Any[int](memory.New(memory.Seq(3))), nil)
	token, err := paging.EncodeToken(paging.State{TotalCount: 30, PageSize: 10, Remaining: 20, PageNum: 1, Offset: 10, ElementsFetched: 10})
	if err != nil {
		t.Fatal(err)
	}

	w := get(t, r, "/v1/tokens?token="+url.QueryEscape(token))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var body struct {
		State paging.State `json:"state"`
		Done  bool         `json:"done"`
	}
	decode(t, w, &body)
	if body.State.Offset != 10 || body.State.Remaining != 20 || body.Done {
		t.Errorf("body = %+v", body)
	}

	if w := get(t, r, "/v1/tokens"); w.Code != http.StatusBadRequest {
		t.Errorf("missing token status = %d", w.Code)
	}
	if w := get(t, r, "/v1/tokens?token=nope"); w.Code != http.StatusBadRequest {
		t.Errorf("bad token status = %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	ok := newTestRouter(source.Any[int](memory.New(memory.Seq(1))), pingFunc(func(context.Context) error { return nil }))
	if w := get(t, ok, "/healthz"); w.Code != http.StatusOK {
		t.Errorf("healthy status = %d", w.Code)
	}

	down := newTestRouter(source.Any[int](memory.New(memory.Seq(1))), pingFunc(func(context.Context) error { return errors.New("refused") }))
	if w := get(t, down, "/healthz"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy status = %d", w.Code)
	}
}

func TestTraceHeader(t *testing.T) {
	r := newTestRouter(source.Any[int](memory.New(memory.Seq(1))), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(ctxutil.TraceIDHeader, "trace-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(ctxutil.TraceIDHeader); got != "trace-123" {
		t.Errorf("trace header = %q", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(source.Any[int](memory.New(memory.Seq(1))), nil)

	w := get(t, r, "/v1/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var body failBody
	decode(t, w, &body)
	if body.Code != ecode.NotFound || body.Message != "GET /v1/nope does not exist" {
		t.Errorf("body = %+v", body)
	}
}
