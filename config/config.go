package config

import "os"

// ListenAddr returns the address the HTTP server binds to, from PORT
// (default 8080).
func ListenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
