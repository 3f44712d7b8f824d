package main

import (
	"net/http"

	_ "webservice/docs"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.indexHandler)
	router.HandlerFunc(http.MethodGet, "/health", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/version", app.versionHandler)
	router.HandlerFunc(http.MethodGet, "/api/info", app.infoHandler)

	router.HandlerFunc(http.MethodGet, "/docs/*filepath", httpSwagger.WrapHandler)

	return app.logRequest(app.recoverPanic(app.rateLimit(router)))
}
