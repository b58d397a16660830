package http

import (
	stdhttp "net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler reports basic liveness for the service. It never touches
// the database, so the endpoint stays green while Postgres is down.
func HealthHandler(service string) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		writeJSON(w, stdhttp.StatusOK, healthResponse{Status: "ok", Service: service})
	}
}
