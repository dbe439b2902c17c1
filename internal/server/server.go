package server

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gitlab.ozon.dev/safariproxd/webserver/internal/metrics"
	"gitlab.ozon.dev/safariproxd/webserver/internal/workerpool"
)

// Submitter hands a job to the worker pool.
type Submitter interface {
	Submit(job workerpool.Job) error
}

type Options struct {
	// IOTimeout bounds reading the request line and writing the response.
	// Zero disables deadlines.
	IOTimeout time.Duration
	// Limiter, when set, caps connections per client IP.
	Limiter *limiter.Limiter
	Metrics metrics.MetricsProvider
	Logger  *slog.Logger
}

// Server accepts TCP connections and submits one job per connection to the
// pool. Each job answers exactly one request line.
type Server struct {
	ln        net.Listener
	pool      Submitter
	pages     PageSource
	ioTimeout time.Duration
	limiter   *limiter.Limiter
	metrics   metrics.MetricsProvider
	log       *slog.Logger
	tracer    trace.Tracer
}

func New(ln net.Listener, pool Submitter, pages PageSource, opts Options) *Server {
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewNoOpProvider()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Server{
		ln:        ln,
		pool:      pool,
		pages:     pages,
		ioTimeout: opts.IOTimeout,
		limiter:   opts.Limiter,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		tracer:    otel.Tracer("webserver-conn"),
	}
}

func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve accepts connections until ctx is cancelled or the listener is closed.
// The listener is always closed on return.
// A submission rejected by the pool ends Serve with an error wrapping
// workerpool.ErrPoolClosed.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.ln.Close()
	})
	defer func() {
		stop()
		_ = s.ln.Close()
	}()

	s.log.Info("server listening", "addr", s.ln.Addr().String())
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.log.Info("server stopped accepting", "addr", s.ln.Addr().String())
				return nil
			}
			return errors.Wrap(err, "accept")
		}

		if s.limited(ctx, conn) {
			continue
		}

		if err := s.pool.Submit(func() { s.handle(conn) }); err != nil {
			s.log.Error("submit connection", "remote", conn.RemoteAddr().String(), "error", err)
			_ = conn.Close()
			return errors.Wrap(err, "submit connection")
		}
	}
}

// limited answers over-limit clients directly from the accept loop.
func (s *Server) limited(ctx context.Context, conn net.Conn) bool {
	if s.limiter == nil {
		return false
	}

	key := clientIP(conn.RemoteAddr())
	lctx, err := s.limiter.Get(ctx, key)
	if err != nil {
		s.log.Warn("rate limiter unavailable", "client", key, "error", err)
		return false
	}
	if !lctx.Reached {
		return false
	}

	s.log.Debug("rate limited", "client", key)
	s.setDeadline(conn)
	if _, err := conn.Write(Response(http.StatusTooManyRequests, nil)); err != nil {
		s.log.Warn("write rate limit response", "client", key, "error", err)
	}
	s.metrics.ResponseWritten(http.StatusTooManyRequests)
	_ = conn.Close()
	return true
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	_, span := s.tracer.Start(context.Background(), "connection.handle",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("net.peer.addr", conn.RemoteAddr().String())),
	)
	defer span.End()

	status, err := s.respond(conn)
	span.SetAttributes(attribute.Int("http.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("connection failed", "remote", conn.RemoteAddr().String(), "error", err)
		return
	}
	span.SetStatus(codes.Ok, "")
}

func (s *Server) respond(conn net.Conn) (int, error) {
	s.setDeadline(conn)

	line, err := readRequestLine(conn)
	if err != nil {
		return 0, err
	}

	route := Resolve(line)
	body, err := s.pages.Page(route.Page)
	if err != nil {
		_ = s.write(conn, http.StatusInternalServerError, nil)
		return http.StatusInternalServerError, errors.Wrap(err, "load page")
	}

	s.log.Debug("request", "line", line, "status", route.StatusLine())
	if err := s.write(conn, route.Status, body); err != nil {
		return route.Status, err
	}
	return route.Status, nil
}

func (s *Server) write(conn net.Conn, status int, body []byte) error {
	if _, err := conn.Write(Response(status, body)); err != nil {
		return errors.Wrap(err, "write response")
	}
	s.metrics.ResponseWritten(status)
	return nil
}

func (s *Server) setDeadline(conn net.Conn) {
	if s.ioTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.ioTimeout))
	}
}

func readRequestLine(conn net.Conn) (string, error) {
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: %w", ErrEmptyRequest, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func clientIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
