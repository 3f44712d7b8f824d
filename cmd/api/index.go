package main

import (
	"fmt"
	"net/http"
	"time"
)

// @Summary      Service identity
// @Description  Returns the service name, version and a per-request timestamp
// @Tags         Identity
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       / [get]
func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"service":   app.config.serviceName,
		"version":   app.config.serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   fmt.Sprintf("%s v%s is running", app.config.serviceName, app.config.serviceVersion),
	}

	app.logger.Infof("Responded to GET / with version %s", app.config.serviceVersion)

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
