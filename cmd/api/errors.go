package main

import (
	"fmt"
	"net/http"
)

// errorResponse sends a JSON error body. A send failure here falls back to
// a bare 500 status; it never propagates to the caller.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	env := envelope{"error": message}

	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs the fault detail and answers with a generic
// body. The detail is never sent to the client.
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorf("500 Server Error: %s", err)
	app.errorResponse(w, r, http.StatusInternalServerError, "Internal server error")
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Infof("404 Not Found: %s", r.URL.Path)

	env := envelope{
		"error": "Not found",
		"path":  r.URL.Path,
	}

	err := app.writeJSON(w, http.StatusNotFound, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
