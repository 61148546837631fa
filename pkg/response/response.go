// Package response wraps an http.ResponseWriter with commit tracking and
// shorthand writers.
package response

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Response struct {
	Writer      http.ResponseWriter
	isCommitted bool
}

func New(w http.ResponseWriter) Response {
	return Response{Writer: w}
}

// IsCommitted reports whether a status line or body has been written.
func (res *Response) IsCommitted() bool {
	return res.isCommitted
}

func (res *Response) SetHeader(key, value string) {
	// headers do not commit
	res.Writer.Header().Set(key, value)
}

func (res *Response) SetStatus(status int) {
	res.Writer.WriteHeader(status)
	res.isCommitted = true
}

func (res *Response) Error(status int, reasons ...string) {
	reason := strings.Join(reasons, " ")
	if reason == "" {
		reason = http.StatusText(status)
	}
	http.Error(res.Writer, reason, status)
	res.isCommitted = true
}

func (res *Response) JSON(obj any) {
	res.SetHeader("Content-Type", "application/json")
	json.NewEncoder(res.Writer).Encode(obj)
	res.isCommitted = true
}

func (res *Response) Text(text string) {
	res.SetHeader("Content-Type", "text/plain")
	res.Writer.Write([]byte(text))
	res.isCommitted = true
}

func (res *Response) NotFound() {
	res.Error(http.StatusNotFound)
}

func (res *Response) MethodNotAllowed(reasons ...string) {
	res.Error(http.StatusMethodNotAllowed, reasons...)
}

func (res *Response) BadRequest(reasons ...string) {
	res.Error(http.StatusBadRequest, reasons...)
}

func (res *Response) InternalServerError(reasons ...string) {
	res.Error(http.StatusInternalServerError, reasons...)
}
