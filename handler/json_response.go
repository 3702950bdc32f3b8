package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON writes v with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: v}
}

// JSONWithStatus writes v with the given status.
func JSONWithStatus(v any, status int) Response {
	return jsonResponse{status: status, body: v}
}

// ErrorBody is the JSON shape of an error.
type ErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// JSONError writes err as an ErrorBody. HTTPErrors keep their status and key;
// anything else is a 500.
func JSONError(err error) Response {
	var body ErrorBody
	status := http.StatusInternalServerError
	body.Error.Code = ErrInternal.Key
	body.Error.Message = http.StatusText(status)

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		body.Error.Code = httpErr.Key
		body.Error.Message = http.StatusText(status)
	}
	return jsonResponse{status: status, body: body}
}
