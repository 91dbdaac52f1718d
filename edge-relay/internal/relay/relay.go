package relay

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const userAgent = "food-admin-edge-relay"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	// TargetURL is the fixed backend origin, e.g. http://10.0.0.5:8081.
	TargetURL string
}

// CORSHeaders is applied to every response the relay produces, including
// preflight answers and upstream failures.
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Methods":     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	"Access-Control-Allow-Headers":     "Content-Type, Authorization, X-Requested-With",
	"Access-Control-Allow-Credentials": "true",
}

// forwardedHeaders are the only caller headers passed upstream. Origin and
// Referer are never among them.
var forwardedHeaders = []string{"Authorization", "Content-Type"}

type Relay struct {
	config Config
	client HTTPClient
}

func NewRelay(config Config, client HTTPClient) *Relay {
	return &Relay{
		config: Config{TargetURL: strings.TrimRight(config.TargetURL, "/")},
		client: client,
	}
}

// TargetFor keeps the path exactly as the caller encoded it.
func (rl *Relay) TargetFor(r *http.Request) string {
	url := rl.config.TargetURL + r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	return url
}

func (rl *Relay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		applyCORS(w)
		w.WriteHeader(http.StatusOK)
		return
	}

	target := rl.TargetFor(r)
	log.Printf("PROXY: %s %s -> %s", r.Method, r.URL.EscapedPath(), target)

	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead && r.Body != nil {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			log.Printf("ERROR: Failed to read request body: %v", err)
			writeFailure(w, err)
			return
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		writeFailure(w, err)
		return
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", userAgent)
	for _, name := range forwardedHeaders {
		if value := r.Header.Get(name); value != "" {
			req.Header.Set(name, value)
		}
	}

	resp, err := rl.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", target, err)
		writeFailure(w, err)
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("ERROR: Failed to read upstream response: %v", err)
		writeFailure(w, err)
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	applyCORS(w)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(data); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (rl *Relay) SetupRoutes() http.Handler {
	r := mux.NewRouter().SkipClean(true).UseEncodedPath()
	r.PathPrefix("/").Handler(rl)
	return r
}

func applyCORS(w http.ResponseWriter) {
	for k, v := range CORSHeaders {
		w.Header().Set(k, v)
	}
}

func writeFailure(w http.ResponseWriter, err error) {
	applyCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "Proxy Connection Failed",
		"details": err.Error(),
	})
}
