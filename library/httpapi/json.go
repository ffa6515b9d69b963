package httpapi

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const maxBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return core.Reject(core.ErrInvalid, reasonMalformedBody)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
