package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideParam is the query parameter HTML forms use to tunnel a verb.
const MethodOverrideParam = "_method"

// MethodOverrideHeader is the header alternative to MethodOverrideParam.
const MethodOverrideHeader = "X-HTTP-Method-Override"

var overridableMethods = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride rewrites POST requests carrying an override to the requested
// verb before routing. It wraps the whole engine because gin matches the
// route before any gin middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.Header.Get(MethodOverrideHeader)
			if override == "" {
				override = r.URL.Query().Get(MethodOverrideParam)
			}
			if override = strings.ToUpper(strings.TrimSpace(override)); overridableMethods[override] {
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}
