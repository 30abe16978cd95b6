// Package api serves the OpenAPI document of the accounts service. The
// document is maintained by hand and embedded into the binary so the
// swagger UI works without any files on disk.
package api

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var spec []byte

// SpecHandler serves the OpenAPI document for the swagger UI.
func SpecHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(spec)
	})
}
