package middleware

import (
	"net/http"
)

// Origens aceitas pelo frontend do dashboard
var allowedOrigins = map[string]bool{
	"http://localhost:3000":             true,
	"http://localhost:5173":             true,
	"https://tulenreporting.vercel.app": true,
}

func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); allowedOrigins[origin] {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
				h.Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Max-Age", "86400")
				h.Set("Content-Type", "application/json")
			}

			// Preflight não passa pela cadeia de autenticação
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
