// Package checkouttest runs an in-process fake of the Checkout API for
// end-to-end tests of the client.
package checkouttest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"github.com/companieshouse/checkout.client.ch.gov.uk/config"
	"github.com/companieshouse/checkout.client.ch.gov.uk/fixtures"
	"github.com/companieshouse/checkout.client.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.client.ch.gov.uk/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// RecordedRequest is a request received by the fake.
type RecordedRequest struct {
	Route  string
	Method string
	Path   string
	Vars   map[string]string
	Header http.Header
	Body   []byte
}

type cannedResponse struct {
	status int
	body   []byte
}

// Server is a fake Checkout API. Every route answers with a canned body until
// Respond overrides it.
type Server struct {
	APIKey  string
	Version string

	// Username and Password, when set, are also accepted as basic auth.
	Username string
	Password string

	mtx        sync.Mutex
	responses  map[string]cannedResponse
	requests   []RecordedRequest
	httpServer *httptest.Server
}

// NewServer starts a fake accepting apiKey.
func NewServer(apiKey string) *Server {
	s := &Server{
		APIKey:    apiKey,
		Version:   config.DefaultConfig().APIVersion,
		responses: defaultResponses(),
	}

	router := mux.NewRouter()
	Register(router, s)
	s.httpServer = httptest.NewServer(router)

	return s
}

// URL returns the root of the fake, without the API version.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Close shuts the fake down.
func (s *Server) Close() {
	s.httpServer.Close()
}

// Config returns a client configuration pointing at the fake.
func (s *Server) Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.CheckoutEndpoint = s.URL()
	cfg.APIVersion = s.Version
	cfg.APIKey = s.APIKey
	return cfg
}

// Respond makes route answer with status and body from now on.
func (s *Server) Respond(route string, status int, body string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.responses[route] = cannedResponse{status: status, body: []byte(body)}
}

// Requests returns every request received so far, oldest first.
func (s *Server) Requests() []RecordedRequest {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(req RecordedRequest) cannedResponse {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.requests = append(s.requests, req)
	return s.responses[req.Route]
}

// handle returns the handler for a named route.
func (s *Server) handle(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("error reading request body: [%v]", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := s.record(RecordedRequest{
			Route:  route,
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Vars:   mux.Vars(r),
			Header: r.Header.Clone(),
			Body:   body,
		})

		if r.Method != http.MethodGet {
			var payload map[string]interface{}
			if err := codec.Unmarshal(body, &payload); err != nil {
				log.ErrorR(r, fmt.Errorf("invalid request body for %s: [%v]", route, err))
				utils.WriteJSONWithStatus(w, r, utils.NewServiceError(http.StatusBadRequest, "702", "Structure of the request is invalid", "validation"), http.StatusBadRequest)
				return
			}
		}

		log.TraceR(r, "fake checkout api response", log.Data{"route": route, "status": resp.status})
		utils.WriteRawJSONWithStatus(w, r, resp.body, resp.status)
	}
}

// authIntercept rejects requests that carry neither the expected API key nor
// the expected basic auth credentials.
func (s *Server) authIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.authorised(r) {
			log.InfoR(r, "fake checkout api unauthorised", log.Data{"path": r.URL.Path})
			utils.WriteRawJSONWithStatus(w, r, []byte(fixtures.UnauthorizedErrorResponse), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authorised(r *http.Request) bool {
	if key := r.Header.Get(helpers.APIKeyHeader); key != "" {
		return key == s.APIKey
	}
	if s.Username == "" {
		return false
	}
	username, password, ok := r.BasicAuth()
	return ok && username == s.Username && password == s.Password
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
