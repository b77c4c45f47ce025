package main

import (
	"net/http"

	pkgroutes "github.com/documenta/docuflow/pkg/routes"
)

func healthz() pkgroutes.Route {
	return pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		},
	}
}
