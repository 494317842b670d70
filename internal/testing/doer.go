// Package testing provides a mock implementation of the tarantool.Doer
// interface for driver tests.
package testing

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/tarantool/go-iproto"
	"github.com/tarantool/go-tarantool/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// T is the slice of the testing.T interface the mocks need.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// MockResponse is a canned Tarantool response.
type MockResponse struct {
	header tarantool.Header
	data   []byte
}

// NewMockResponse builds a response whose IPROTO_DATA field holds body.
func NewMockResponse(t T, body any) *MockResponse {
	t.Helper()

	data, err := msgpack.Marshal(map[iproto.Key]any{iproto.IPROTO_DATA: body})
	if err != nil {
		t.Fatalf("failed to encode response body: %s", err)
	}

	return &MockResponse{
		header: tarantool.Header{}, //nolint:exhaustruct
		data:   data,
	}
}

// MockRequest is the request mock futures are built from. Its body is
// never encoded because the future is completed without hitting a
// connection.
type MockRequest struct{}

// NewMockRequest creates a new MockRequest.
func NewMockRequest() *MockRequest {
	return &MockRequest{}
}

// Type returns the request type.
func (r *MockRequest) Type() iproto.Type {
	return iproto.IPROTO_CALL
}

// Async reports whether the request expects a response.
func (r *MockRequest) Async() bool {
	return false
}

// Body encodes nothing.
func (r *MockRequest) Body(_ tarantool.SchemaResolver, _ *msgpack.Encoder) error {
	return nil
}

// Ctx returns the request context.
func (r *MockRequest) Ctx() context.Context {
	return context.Background()
}

// Response decodes a response for the request.
func (r *MockRequest) Response(header tarantool.Header, body io.Reader) (tarantool.Response, error) {
	resp, err := tarantool.DecodeBaseResponse(header, body)

	return resp, err
}

type doerReply struct {
	resp *MockResponse
	err  error
}

// MockDoer is an implementation of the tarantool.Doer interface driven
// by a scripted list of replies.
type MockDoer struct {
	mu sync.Mutex
	// Requests is a slice of received requests. It could be used to
	// compare incoming requests with expected.
	Requests []tarantool.Request
	replies  []doerReply
	t        T
}

// NewMockDoer creates a MockDoer from the given replies. Each reply
// must be either a *MockResponse or an error.
func NewMockDoer(t T, replies ...any) *MockDoer {
	t.Helper()

	doer := &MockDoer{
		mu:       sync.Mutex{},
		t:        t,
		Requests: []tarantool.Request{},
		replies:  []doerReply{},
	}

	for _, reply := range replies {
		scripted := doerReply{
			resp: nil,
			err:  nil,
		}

		switch value := reply.(type) {
		case *MockResponse:
			scripted.resp = value
		case error:
			scripted.err = value
		default:
			t.Fatalf("unsupported reply type: %T", reply)
		}

		doer.replies = append(doer.replies, scripted)
	}

	return doer
}

// Do records the request and returns a future completed with the next
// scripted reply.
func (d *MockDoer) Do(req tarantool.Request) *tarantool.Future {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Requests = append(d.Requests, req)

	fut := tarantool.NewFuture(NewMockRequest())

	if len(d.replies) == 0 {
		d.t.Fatalf("list of scripted replies is empty")
	}

	reply := d.replies[0]
	d.replies = d.replies[1:]

	if reply.err != nil {
		fut.SetError(reply.err)
	} else {
		_ = fut.SetResponse(reply.resp.header, bytes.NewBuffer(reply.resp.data))
	}

	return fut
}
