package server

import (
	"encoding/json"
	"net/http"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// withJSON sets API headers and caps request bodies.
func withJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

// decodeBody decodes a JSON request body into v. An empty body yields
// io.EOF.
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, errors.ErrInvalidPromotion):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusBadRequest, "malformed request: "+err.Error())
	}
}

func etag(version string) string {
	return `"` + version + `"`
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrInvalidSquare), errors.Is(err, errors.ErrInvalidFEN):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrIllegalMove), errors.Is(err, errors.ErrInvalidPromotion):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrNotYourTurn),
		errors.Is(err, errors.ErrGameOver),
		errors.Is(err, errors.ErrPromotionPending),
		errors.Is(err, errors.ErrNoPromotionPending):
		return http.StatusConflict
	case errors.Is(err, errors.ErrTooManyGames):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
