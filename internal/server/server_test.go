package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"gitlab.ozon.dev/safariproxd/webserver/internal/server/mock"
	"gitlab.ozon.dev/safariproxd/webserver/internal/workerpool"
	"gitlab.ozon.dev/safariproxd/webserver/pkg/cache"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingPages struct{}

func (failingPages) Page(string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

type testEnv struct {
	pool   *workerpool.Pool
	srv    *Server
	cancel context.CancelFunc
	served chan error
}

func startServer(t *testing.T, pool *workerpool.Pool, pages PageSource, opts Options) *testEnv {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	if opts.IOTimeout == 0 {
		opts.IOTimeout = 2 * time.Second
	}

	env := &testEnv{
		pool:   pool,
		srv:    New(ln, pool, pages, opts),
		served: make(chan error, 1),
	}
	ctx, cancel := context.WithCancel(context.Background())
	env.cancel = cancel
	go func() { env.served <- env.srv.Serve(ctx) }()
	return env
}

func (e *testEnv) stop(t *testing.T) {
	t.Helper()
	e.cancel()
	select {
	case err := <-e.served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	assert.NoError(t, e.pool.Close())
}

func roundTrip(addr net.Addr, line string) (string, error) {
	conn, err := net.DialTimeout("tcp", addr.String(), time.Second)
	if err != nil {
		return "", err
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(2 * time.Second)); err != nil {
		return "", err
	}

	if line != "" {
		if _, err := fmt.Fprintf(conn, "%s\r\n", line); err != nil {
			return "", err
		}
	}

	resp, err := io.ReadAll(conn)
	return string(resp), err
}

func request(t *testing.T, addr net.Addr, line string) string {
	t.Helper()
	resp, err := roundTrip(addr, line)
	require.NoError(t, err)
	return resp
}

func statusOf(resp string) string {
	head, _, _ := strings.Cut(resp, "\r\n")
	return head
}

type ServerSuite struct {
	suite.Suite
	env *testEnv
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	pool := workerpool.New(2, workerpool.WithLogger(quietLogger()))
	pages := NewPages("", cache.Config{MaxSize: 4}, nil)
	s.env = startServer(s.T(), pool, pages, Options{})
}

func (s *ServerSuite) TearDownTest() {
	s.env.stop(s.T())
}

func (s *ServerSuite) TestIndex() {
	resp := request(s.T(), s.env.srv.Addr(), "GET / HTTP/1.1")

	head, body, ok := strings.Cut(resp, "\r\n\r\n")
	s.Require().True(ok)
	s.Equal(fmt.Sprintf("HTTP/1.1 200 OK\r\nContent-Length: %d", len(body)), head)
	s.Contains(body, "Hello!")
}

func (s *ServerSuite) TestNotFound() {
	resp := request(s.T(), s.env.srv.Addr(), "GET /missing HTTP/1.1")

	s.Equal("HTTP/1.1 404 NOT FOUND", statusOf(resp))
	s.Contains(resp, "Oops!")
}

func (s *ServerSuite) TestConcurrentClients() {
	const clients = 20

	var wg sync.WaitGroup
	statuses := make([]string, clients)
	errs := make([]error, clients)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := roundTrip(s.env.srv.Addr(), "GET / HTTP/1.1")
			statuses[i], errs[i] = statusOf(resp), err
		}(i)
	}
	wg.Wait()

	for i := range statuses {
		s.NoError(errs[i], "client %d", i)
		s.Equal("HTTP/1.1 200 OK", statuses[i], "client %d", i)
	}
	s.Eventually(func() bool {
		return s.env.pool.Completed() == clients
	}, time.Second, 10*time.Millisecond)
}

func (s *ServerSuite) TestEmptyConnectionDoesNotHurtPool() {
	conn, err := net.Dial("tcp", s.env.srv.Addr().String())
	s.Require().NoError(err)
	s.Require().NoError(conn.Close())

	resp := request(s.T(), s.env.srv.Addr(), "GET / HTTP/1.1")
	s.Equal("HTTP/1.1 200 OK", statusOf(resp))
	s.Zero(s.env.pool.Failed())
}

func TestServer_PageFailure(t *testing.T) {
	t.Parallel()

	env := startServer(t, workerpool.New(1, workerpool.WithLogger(quietLogger())), failingPages{}, Options{})
	defer env.stop(t)

	resp := request(t, env.srv.Addr(), "GET / HTTP/1.1")
	assert.Equal(t, "HTTP/1.1 500 INTERNAL SERVER ERROR\r\nContent-Length: 0\r\n\r\n", resp)

	resp = request(t, env.srv.Addr(), "GET / HTTP/1.1")
	assert.Equal(t, "HTTP/1.1 500 INTERNAL SERVER ERROR", statusOf(resp))
}

func TestServer_RateLimited(t *testing.T) {
	t.Parallel()

	lim := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 1})
	pool := workerpool.New(1, workerpool.WithLogger(quietLogger()))
	pages := NewPages("", cache.Config{MaxSize: 4}, nil)
	env := startServer(t, pool, pages, Options{Limiter: lim})
	defer env.stop(t)

	assert.Equal(t, "HTTP/1.1 200 OK", statusOf(request(t, env.srv.Addr(), "GET / HTTP/1.1")))
	// The accept loop answers without reading, so the client sends nothing.
	assert.Equal(t,
		"HTTP/1.1 429 TOO MANY REQUESTS\r\nContent-Length: 0\r\n\r\n",
		request(t, env.srv.Addr(), ""))
	assert.Eventually(t, func() bool {
		return pool.Completed() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestServer_SubmitAfterPoolClosed(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(1, workerpool.WithLogger(quietLogger()))
	require.NoError(t, pool.Close())

	env := startServer(t, pool, NewPages("", cache.Config{}, nil), Options{})
	defer env.cancel()

	conn, err := net.Dial("tcp", env.srv.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	select {
	case err := <-env.served:
		assert.ErrorIs(t, err, workerpool.ErrPoolClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running with a closed pool")
	}
}

func serveWith(t *testing.T, pool Submitter) (*Server, context.CancelFunc, <-chan error) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(ln, pool, NewPages("", cache.Config{MaxSize: 4}, nil), Options{
		IOTimeout: 2 * time.Second,
		Logger:    quietLogger(),
	})
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()
	return srv, cancel, served
}

func TestServer_SubmitsOneJobPerConnection(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	pool := mock.NewSubmitterMock(ctrl)
	pool.SubmitMock.Set(func(job workerpool.Job) error {
		go job()
		return nil
	})

	srv, cancel, served := serveWith(t, pool)

	assert.Equal(t, "HTTP/1.1 200 OK", statusOf(request(t, srv.Addr(), "GET / HTTP/1.1")))
	assert.Equal(t, "HTTP/1.1 404 NOT FOUND", statusOf(request(t, srv.Addr(), "GET /nope HTTP/1.1")))

	cancel()
	require.NoError(t, <-served)
	assert.Equal(t, uint64(2), pool.SubmitAfterCounter())
}

func TestServer_RejectedSubmissionStopsServing(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	pool := mock.NewSubmitterMock(ctrl)
	pool.SubmitMock.Return(workerpool.ErrPoolClosed)

	srv, cancel, served := serveWith(t, pool)
	defer cancel()

	conn, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	select {
	case err := <-served:
		assert.ErrorIs(t, err, workerpool.ErrPoolClosed)
		assert.Contains(t, err.Error(), "submit connection")
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after a rejected submission")
	}
	assert.Equal(t, uint64(1), pool.SubmitAfterCounter())
}

func TestReadRequestLine(t *testing.T) {
	t.Parallel()

	t.Run("Success_TrimsLineEnding", func(t *testing.T) {
		t.Parallel()
		client, srv := net.Pipe()
		defer srv.Close()
		go func() {
			_, _ = io.WriteString(client, "GET / HTTP/1.1\r\n")
			_ = client.Close()
		}()

		line, err := readRequestLine(srv)
		require.NoError(t, err)
		assert.Equal(t, "GET / HTTP/1.1", line)
	})

	t.Run("Fail_KeepsReadCause", func(t *testing.T) {
		t.Parallel()
		client, srv := net.Pipe()
		defer srv.Close()
		require.NoError(t, client.Close())

		_, err := readRequestLine(srv)
		assert.ErrorIs(t, err, ErrEmptyRequest)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Fail_KeepsTimeout", func(t *testing.T) {
		t.Parallel()
		client, srv := net.Pipe()
		defer client.Close()
		defer srv.Close()
		require.NoError(t, srv.SetReadDeadline(time.Now().Add(10*time.Millisecond)))

		_, err := readRequestLine(srv)
		assert.ErrorIs(t, err, ErrEmptyRequest)
		assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
	})
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.0.0.7", clientIP(&net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 5000}))
	assert.Equal(t, "192.168.1.1", clientIP(&net.UDPAddr{IP: net.ParseIP("192.168.1.1"), Port: 53}))
}
