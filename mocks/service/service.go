// Package service is an in-process mock of the Ello API, for exercising the live transport
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type MockedService interface {
	Name() string
	Host() string
	Port() int
	Url() string
	Start() error
	Shutdown()
	Clear()
	// MockCall queues a response for a method on a path - the path may be a template (e.g. "/api/v2/posts/{postId}")
	MockCall(path string, method string, responseStatus int, responseBody any, headers ...string)
	AssertCalled(path string, method string) bool
	// Calls returns every request received, in order
	Calls() []Call
}

// Call is a request received by the mocked service
type Call struct {
	Method string
	// Route is the mocked path template that matched ("" when nothing matched)
	Route  string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

func NewMockedService(name string) MockedService {
	result := &mockedService{
		name: name,
		host: "localhost",
	}
	result.reset()
	return result
}

type mockedService struct {
	name      string
	host      string
	port      int
	server    *http.Server
	listener  net.Listener
	mu        sync.RWMutex
	routerMu  sync.RWMutex
	router    chi.Router
	endpoints map[string]*mockedEndpoint
	calls     []Call
}

type mockedEndpoint struct {
	calls    int
	statuses []int
	headers  []map[string]string
	bodies   [][]byte
}

var _ MockedService = (*mockedService)(nil)
var _ http.Handler = (*mockedService)(nil)

func (m *mockedService) Name() string {
	return m.name
}

func (m *mockedService) Host() string {
	return m.host
}

func (m *mockedService) Port() int {
	return m.port
}

func (m *mockedService) Url() string {
	return "http://" + m.host + ":" + strconv.Itoa(m.port)
}

func (m *mockedService) Start() (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("mocked service: %w", err)
		}
	}()
	// port 0 tells the OS to pick an unused port
	if m.listener, err = net.Listen("tcp", "127.0.0.1:0"); err == nil {
		addr := m.listener.Addr().(*net.TCPAddr)
		m.port = addr.Port
		m.server = &http.Server{Handler: m}
		go func() {
			_ = m.server.Serve(m.listener)
		}()
	}
	return
}

func (m *mockedService) Shutdown() {
	if m.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.server.Shutdown(ctx)
	}
}

func (m *mockedService) Clear() {
	m.routerMu.Lock()
	defer m.routerMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *mockedService) reset() {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	m.router = router
	m.endpoints = make(map[string]*mockedEndpoint)
	m.calls = nil
}

func (m *mockedService) MockCall(path string, method string, responseStatus int, responseBody any, headers ...string) {
	m.routerMu.Lock()
	defer m.routerMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	l := len(headers)
	hdrs := make(map[string]string, l/2)
	for i := 0; i+1 < l; i += 2 {
		hdrs[headers[i]] = headers[i+1]
	}
	key := method + " " + path
	if ep, ok := m.endpoints[key]; ok {
		ep.statuses = append(ep.statuses, responseStatus)
		ep.bodies = append(ep.bodies, bodyToBytes(responseBody))
		ep.headers = append(ep.headers, hdrs)
	} else {
		m.endpoints[key] = &mockedEndpoint{
			statuses: []int{responseStatus},
			bodies:   [][]byte{bodyToBytes(responseBody)},
			headers:  []map[string]string{hdrs},
		}
		m.router.MethodFunc(method, path, m.handler(key))
	}
}

func bodyToBytes(body any) []byte {
	result := make([]byte, 0)
	if body != nil {
		switch bt := body.(type) {
		case json.RawMessage:
			return bt
		case []byte:
			return bt
		case string:
			return []byte(bt)
		default:
			if data, err := json.Marshal(body); err == nil {
				return data
			}
		}
	}
	return result
}

func (m *mockedService) AssertCalled(path string, method string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if ep, ok := m.endpoints[method+" "+path]; ok && ep.calls > 0 {
		return true
	}
	return false
}

func (m *mockedService) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Call(nil), m.calls...)
}

type callIndexKey struct{}

func (m *mockedService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	m.routerMu.RLock()
	defer m.routerMu.RUnlock()
	m.mu.Lock()
	idx := len(m.calls)
	m.calls = append(m.calls, Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	m.mu.Unlock()
	m.router.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callIndexKey{}, idx)))
}

func (m *mockedService) handler(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		ep, ok := m.endpoints[key]
		if !ok || ep.calls >= len(ep.statuses) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if idx, ok := r.Context().Value(callIndexKey{}).(int); ok && idx < len(m.calls) {
			m.calls[idx].Route = chi.RouteContext(r.Context()).RoutePattern()
		}
		n := ep.calls
		ep.calls++
		seenContentType := false
		for k, v := range ep.headers[n] {
			w.Header().Set(k, v)
			seenContentType = seenContentType || http.CanonicalHeaderKey(k) == "Content-Type"
		}
		if !seenContentType {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(ep.statuses[n])
		_, _ = w.Write(ep.bodies[n])
	}
}
