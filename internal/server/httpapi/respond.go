package httpapi

import (
	"encoding/json"
	"net/http"
)

// detailResponse is the uniform error body.
type detailResponse struct {
	Detail string `json:"detail"`
}

// messageResponse is the body for acknowledgement-only endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeUnauthorized sends the uniform authentication failure. The challenge
// header is set before the body is written.
func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, detail)
}

// decodeBody reads a JSON request body into dst. A malformed or absent body
// yields false after responding with 422.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}
	return true
}
