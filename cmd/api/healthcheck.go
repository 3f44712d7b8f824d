package main

import (
	"net/http"
)

// @Summary      Health check
// @Description  Liveness probe reporting a static healthy status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status":  "healthy",
		"service": app.config.serviceName,
		"version": app.config.serviceVersion,
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
