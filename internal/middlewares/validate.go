package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate decodes and validates a JSON request body of type T, storing
// the result in the request context for the handler wrapper to pick up.
// Malformed or invalid input fails fast with 400.
func Validate[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body T

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&body); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
			return
		}

		if err := validate.Struct(body); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
			return
		}

		ctx := context.WithValue(r.Context(), models.ValidatedBodyKey{}, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidateQuery decodes query-string parameters into a struct of type T
// keyed by json tags, then validates it. Integer fields reject
// non-numeric input with 400 instead of silently defaulting to zero.
func ValidateQuery[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values, ok := decodeQueryValues[T](r)
		if !ok {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
			return
		}

		raw, err := json.Marshal(values)
		if err != nil {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
			return
		}

		var queryParams T
		if err = json.Unmarshal(raw, &queryParams); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
			return
		}

		if err = validate.Struct(queryParams); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
			return
		}

		ctx := context.WithValue(r.Context(), models.ValidatedQueryKey{}, queryParams)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// decodeQueryValues converts query-string values according to T's field
// kinds so that "page=abc" is a validation failure rather than a zero.
func decodeQueryValues[T any](r *http.Request) (map[string]any, bool) {
	fieldKinds := map[string]reflect.Kind{}
	t := reflect.TypeFor[T]()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fieldKinds[name] = field.Type.Kind()
	}

	values := map[string]any{}
	for key, vals := range r.URL.Query() {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		kind, known := fieldKinds[key]
		if !known {
			continue
		}
		switch kind {
		case reflect.Int, reflect.Int32, reflect.Int64:
			n, err := strconv.Atoi(vals[0])
			if err != nil {
				return nil, false
			}
			values[key] = n
		case reflect.Bool:
			b, err := strconv.ParseBool(vals[0])
			if err != nil {
				return nil, false
			}
			values[key] = b
		default:
			values[key] = vals[0]
		}
	}
	return values, true
}
