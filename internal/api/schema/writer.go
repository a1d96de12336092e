package schema

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents the error envelope sent by the JSON action endpoints
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Writer helps writing unified API responses
type Writer struct {
	InternalErrorHook func(err error)
}

// WriteJSONCode writes the JSON representation of value to the given response writer using the given HTTP status code
func (writer *Writer) WriteJSONCode(rw http.ResponseWriter, code int, value interface{}) {
	val, _ := json.Marshal(value)
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	rw.Write(val)
}

// WriteJSON writes the JSON representation of value to the given response writer.
// This method sends 200 OK as the HTTP status code; use WriteJSONCode to use a different one.
func (writer *Writer) WriteJSON(rw http.ResponseWriter, value interface{}) {
	writer.WriteJSONCode(rw, http.StatusOK, value)
}

// WriteError sends an error envelope using the given HTTP status code
func (writer *Writer) WriteError(rw http.ResponseWriter, code int, message string) {
	writer.WriteJSONCode(rw, code, &ErrorResponse{
		Error:   true,
		Message: message,
	})
}

// WriteRemoteError processes a failed remote call and writes it to the response.
// The message is prefixed with the given action description, mirroring what the hook receives.
func (writer *Writer) WriteRemoteError(rw http.ResponseWriter, action string, err error) {
	if writer.InternalErrorHook != nil {
		writer.InternalErrorHook(err)
	}
	writer.WriteError(rw, http.StatusInternalServerError, action+": "+err.Error())
}
