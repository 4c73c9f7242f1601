package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest is a request received by ApiMock.
type RecordedRequest struct {
	Headers map[string]string
	Body    map[string]any
}

type scriptedResponse struct {
	status int
	body   any
}

// ApiMock is a programmable HTTP server standing in for a third-party API.
// Responses are scripted per method and path, either for a specific call
// index or as the default for every call.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]RecordedRequest
	responses map[string]map[int]scriptedResponse
	defaults  map[string]scriptedResponse
}

// NewApiServer creates an ApiMock. Call Start before use.
func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]RecordedRequest{},
		responses: map[string]map[int]scriptedResponse{},
		defaults:  map[string]scriptedResponse{},
	}
}

// Start launches the HTTP server.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close shuts the HTTP server down.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the base URL of the running server.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	headers := map[string]string{}
	for name, values := range r.Header {
		headers[name] = values[0]
	}

	a.mu.Lock()
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], RecordedRequest{Headers: headers, Body: body})
	resp := a.responseFor(key, index)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}

func (a *ApiMock) responseFor(key string, index int) scriptedResponse {
	if resp, ok := a.responses[key][index]; ok {
		return resp
	}
	if resp, ok := a.defaults[key]; ok {
		return resp
	}
	return scriptedResponse{status: http.StatusOK, body: map[string]any{}}
}

// SetResponse scripts the response for the index-th call to method path.
// An index of -1 sets the default for every call without a specific script.
func (a *ApiMock) SetResponse(index int, method, path string, status int, body map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	resp := scriptedResponse{status: status, body: body}
	if index == -1 {
		a.defaults[key] = resp
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]scriptedResponse{}
	}
	a.responses[key][index] = resp
}

// Requests returns every request received for method path.
func (a *ApiMock) Requests(method, path string) []RecordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]RecordedRequest(nil), a.requests[method+path]...)
}

// Reset forgets received requests and scripted responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]RecordedRequest{}
	a.responses = map[string]map[int]scriptedResponse{}
	a.defaults = map[string]scriptedResponse{}
}
