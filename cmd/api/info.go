package main

import (
	"net/http"
	"time"
)

// @Summary      Service info
// @Description  Detailed identity report including container status
// @Tags         Identity
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/info [get]
func (app *application) infoHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"service":     app.config.serviceName,
		"version":     app.config.serviceVersion,
		"uptime_info": "Container started",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
