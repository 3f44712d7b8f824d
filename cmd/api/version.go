package main

import (
	"net/http"
)

// @Summary      Deployed version
// @Description  Returns the version and name this deployment reports
// @Tags         Identity
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /version [get]
func (app *application) versionHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"version": app.config.serviceVersion,
		"service": app.config.serviceName,
	}

	app.logger.Infof("Version check: %s", app.config.serviceVersion)

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
