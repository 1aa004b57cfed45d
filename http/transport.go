package http

import (
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	money "go-money-parser"
	"go-money-parser/parser"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; inputs are two short tokens.
const maxBodyBytes = 1 << 20

// Server dependencies for HTTP Server functions
type Server struct {
	Service parser.Service
	logger  log.Logger
	router  *http.ServeMux
}

func NewServer(s parser.Service, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		logger:  logger,
		router:  http.NewServeMux(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/parse", s.parse())
	s.router.Handle("/api/currency", s.parseCurrency())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// request for unmarshalling JSON requests posted by clients
type request struct {
	Input string `json:"input"`
}

// errorResponse body of every non-200 reply
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// parse produces HTTP handler for "amount currency" strings
func (s *Server) parse() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		req, ok := s.decode(rw, r)
		if !ok {
			return
		}

		result, err := s.Service.Parse(r.Context(), req.Input)
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.respond(rw, http.StatusOK, result)
	}
}

// parseCurrency produces HTTP handler for a single currency token
func (s *Server) parseCurrency() http.HandlerFunc {
	type response struct {
		Currency money.Currency `json:"currency"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		req, ok := s.decode(rw, r)
		if !ok {
			return
		}

		currency, err := s.Service.ParseCurrency(r.Context(), req.Input)
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.respond(rw, http.StatusOK, response{Currency: currency})
	}
}

// decode reads the JSON request body, replying with an error itself when it cannot.
func (s *Server) decode(rw http.ResponseWriter, r *http.Request) (request, bool) {
	defer r.Body.Close()

	var req request
	if r.Method != http.MethodPost {
		rw.Header().Set("Allow", http.MethodPost)
		s.respond(rw, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return req, false
	}

	bytes, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
	if err != nil {
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return req, false
	}

	if err := json.Unmarshal(bytes, &req); err != nil {
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return req, false
	}
	return req, true
}

// fail maps a service error to a status code: parse failures are the
// client's fault, anything else is ours.
func (s *Server) fail(rw http.ResponseWriter, err error) {
	var pe *money.ParseError
	if errors.As(err, &pe) {
		s.respond(rw, http.StatusUnprocessableEntity, errorResponse{Error: pe.Error(), Kind: pe.Kind.String()})
		return
	}
	_ = level.Error(s.logger).Log("msg", "parse failed", "err", err)
	s.respond(rw, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (s *Server) respond(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		_ = level.Error(s.logger).Log("msg", "failed json encoding", "err", err)
	}
}
