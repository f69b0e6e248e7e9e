// internal/controller/middleware.go
package controller

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

// Recover converts a panic anywhere in the pipeline into a 500. The
// underlying fault is logged; the body carries it only outside
// production.
func Recover(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("❌ panic in %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					msg := "Internal Server Error"
					if !production {
						msg = fmt.Sprintf("%v", rec)
					}
					writeError(w, http.StatusInternalServerError, msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
