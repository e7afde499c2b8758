package handler

import (
	"net/http"

	"github.com/newsbrief/newsbrief/internal/transport/response"
)

// Home answers the liveness check used by the web client on page load.
type Home struct{}

func NewHome() *Home {
	return &Home{}
}

func (h *Home) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.WriteMessage(w, "News summarizer API is running")
}

// Test answers the smoke-test endpoint. The request body is ignored.
type Test struct{}

func NewTest() *Test {
	return &Test{}
}

func (h *Test) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.WriteMessage(w, "Test endpoint is working")
}
