package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"ufl-rankings/internal/constants"

	"github.com/valyala/fasthttp"
)

// fasthttpDoer lets connect clients send requests through a fasthttp.Client.
type fasthttpDoer struct {
	client *fasthttp.Client
}

func newFasthttpDoer() *fasthttpDoer {
	return &fasthttpDoer{
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ClientTimeout,
			WriteTimeout:        constants.ClientTimeout,
			MaxIdleConnDuration: time.Minute,
		},
	}
}

func (d *fasthttpDoer) Do(r *http.Request) (*http.Response, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.URL.String())
	req.Header.SetMethod(r.Method)
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		req.SetBody(body)
	}

	if err := d.do(r.Context(), req, resp); err != nil {
		return nil, err
	}

	out := &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.StatusCode(), http.StatusText(resp.StatusCode())),
		StatusCode:    resp.StatusCode(),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          io.NopCloser(bytes.NewReader(bytes.Clone(resp.Body()))),
		ContentLength: int64(len(resp.Body())),
		Request:       r,
	}
	resp.Header.VisitAll(func(k, v []byte) {
		out.Header.Add(string(k), string(v))
	})
	return out, nil
}

func (d *fasthttpDoer) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, ok := ctx.Deadline()
	if ok {
		return d.client.DoDeadline(req, resp, deadline)
	}
	return d.client.DoTimeout(req, resp, constants.ClientTimeout)
}
