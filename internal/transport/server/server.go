package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/newsbrief/newsbrief/internal/application"
	"github.com/newsbrief/newsbrief/internal/transport/middleware"
)

// NewRouter configures the HTTP routes for the application.
func NewRouter(app *application.Application) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/", app.HomeHandler).Methods("GET")
	r.Handle("/test", app.TestHandler).Methods("POST")
	r.Handle("/summarize", app.SummarizeHandler).Methods("POST")

	return r
}

// CreateHandler creates the main HTTP handler for the application.
func CreateHandler() (http.Handler, func(), error) {
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	// Middleware wraps the router so CORS preflights are answered even for
	// method-restricted routes.
	var handler http.Handler = NewRouter(app)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(app.Config.AllowedOrigin)(handler)
	handler = middleware.Recover(handler)

	cleanup := func() {
		app.Close()
	}

	return handler, cleanup, nil
}

// HandleRequest handles a single HTTP request (for Cloud Functions).
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, cleanup, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
