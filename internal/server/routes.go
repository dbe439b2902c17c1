package server

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	IndexRequest = "GET / HTTP/1.1"

	IndexPage    = "hello.html"
	NotFoundPage = "404.html"
)

type Route struct {
	Status int
	Page   string
}

// StatusLine renders the HTTP/1.1 status line with an upper-case reason
// phrase, e.g. "HTTP/1.1 404 NOT FOUND".
func (r Route) StatusLine() string {
	return statusLine(r.Status)
}

// Resolve maps a raw request line to its route. Only the exact index request
// succeeds; everything else is not found.
func Resolve(requestLine string) Route {
	if requestLine == IndexRequest {
		return Route{Status: http.StatusOK, Page: IndexPage}
	}
	return Route{Status: http.StatusNotFound, Page: NotFoundPage}
}

func statusLine(status int) string {
	return fmt.Sprintf("HTTP/1.1 %d %s", status, strings.ToUpper(http.StatusText(status)))
}

// Response frames a body as "<status-line>\r\nContent-Length: <n>\r\n\r\n<body>".
func Response(status int, body []byte) []byte {
	head := fmt.Sprintf("%s\r\nContent-Length: %d\r\n\r\n", statusLine(status), len(body))
	return append([]byte(head), body...)
}
