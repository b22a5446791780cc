// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"net/http"
)

// StatusMessage is the acknowledgement body every mutation endpoint returns.
type StatusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DataEnvelope wraps list responses that carry a status alongside the rows.
type DataEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Success(w http.ResponseWriter, status int, message string) {
	JSON(w, status, StatusMessage{Status: "success", Message: message})
}

func Data(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, DataEnvelope{Status: "success", Data: data})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, BadRequestError(message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func Conflict(w http.ResponseWriter, field string) {
	JSONError(w, DuplicateError(field))
}

func InternalServerError(w http.ResponseWriter, err error) {
	JSONError(w, InternalError(err))
}
