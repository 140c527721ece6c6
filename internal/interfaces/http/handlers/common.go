package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// defaultMaxBodySize bounds request bodies when the handler was built without
// an explicit limit.
const defaultMaxBodySize = 1 << 20

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, statusCode int, resp ghs.ErrorResponse) {
	writeJSON(w, statusCode, resp)
}

// writeAppError maps application-level errors to HTTP status codes.  Errors
// that are not AppErrors, and server-side AppErrors, are masked.
func writeAppError(w http.ResponseWriter, err error) {
	if ctxErr := errors.FromContext(err); ctxErr != nil {
		err = ctxErr
	}

	var ae *errors.AppError
	if !errors.As(err, &ae) {
		writeError(w, http.StatusInternalServerError, ghs.ErrorResponse{
			Code:    errors.ErrCodeInternal.String(),
			Message: errors.DefaultMessageForCode(errors.ErrCodeInternal),
		})
		return
	}

	status := ae.HTTPStatus()
	resp := ghs.ErrorResponse{Code: ae.Code.String(), Message: ae.Message, Detail: ae.Detail}
	if status >= http.StatusInternalServerError {
		resp.Message = errors.DefaultMessageForCode(ae.Code)
		resp.Detail = ""
	}
	writeError(w, status, resp)
}

// ---------------------------------------------------------------------------
// Request binding
// ---------------------------------------------------------------------------

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

// getValidator returns the shared validator with English messages and JSON
// field names.
func getValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		translator, _ = uni.GetTranslator("en")

		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(validate, translator)
	})
	return validate, translator
}

// decodeJSON reads a size-limited JSON body into dst and validates it.
func decodeJSON(r *http.Request, maxBytes int64, dst interface{}) error {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodySize
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBytes))
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return errors.New(errors.ErrCodeBadRequest, "request body is empty")
		}
		return errors.Wrap(err, errors.ErrCodeBadRequest, "invalid JSON body").WithDetail(err.Error())
	}
	return validateStruct(dst)
}

// validateStruct runs struct-tag validation and converts the failures into a
// single COMMON_010 error whose detail lists every field.
func validateStruct(v interface{}) error {
	val, trans := getValidator()
	err := val.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.ErrCodeValidation, "validation failed")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return errors.New(errors.ErrCodeValidation, "validation failed").WithDetail(strings.Join(msgs, "; "))
}
