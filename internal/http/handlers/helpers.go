package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"parcel-tracking-service/internal/logx"
)

const bodyLimit = 1 << 20

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error",
			logx.String("path", r.URL.Path),
			logx.Any("err", err),
		)
	}
}

// writeData wraps payloads in the {success, data} envelope.
func writeData(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(logger, w, r, status, map[string]any{
		"success": true,
		"data":    data,
	})
}

// writeError writes the {success:false, error} envelope.
func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("http error",
		logx.String("path", r.URL.Path),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "JSON inválido")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "JSON inválido")
		return false
	}
	return true
}

// validate resolves field names from json tags so validation errors can
// name the wire field.
var validate = newValidator()

func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// firstValidationMessage converts a validator error into the message for
// the first failing field: missing required fields name the field, any
// other rule yields a generic invalid-field message.
func firstValidationMessage(err error) string {
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		if fe.Tag() == "required" {
			return "Campo obrigatório: " + fe.Field()
		}
		return "Campo inválido: " + fe.Field()
	}
	return "entrada inválida"
}
