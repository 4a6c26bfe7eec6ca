package api

import "net/http"

// writeRawJSON writes a pre-serialized JSON body.
func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeCachedJSON serves a cached list payload.
func writeCachedJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("X-Cache", "HIT")
	writeRawJSON(w, http.StatusOK, body)
}
