package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

var errInvalidJSON = domain.NewBadRequestError("invalid JSON body")

// readBody returns the request body with leading whitespace removed.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewBadRequestError("request body too large")
		}
		return nil, errInvalidJSON
	}
	return bytes.TrimLeft(body, " \t\r\n"), nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if len(body) == 0 || json.Unmarshal(body, dst) != nil {
		return errInvalidJSON
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewBadRequestError("invalid id format")
	}
	return id, nil
}

// queryInt coerces an optional integer query parameter. A missing or empty
// value yields def.
func queryInt(q url.Values, name string, def int, errs *[]domain.FieldError) int {
	raw := q.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return def
	}
	return v
}
