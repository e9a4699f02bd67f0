// Package validation turns gin binding failures into field level errors.
//
// Request DTOs declare their schema with struct tags (binding:"required,gt=0",
// binding:"omitempty,gte=0,lte=100", binding:"datetime=2006-01-02", ...).
// gin decodes the request and hands the struct to go-playground/validator;
// this package reports the outcome with the wire names of the fields.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Param      string `json:"param,omitempty"`
	Message    string `json:"message"`
}

// Error is returned when a request does not satisfy its schema.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var setupOnce sync.Once

// Setup makes the gin validator report json/form names instead of Go
// field names. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(wireName)
	})
}

func wireName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// BindJSON decodes and validates a JSON request body.
func BindJSON(c *gin.Context, obj any) error {
	Setup()
	if err := c.ShouldBindJSON(obj); err != nil {
		return Translate(err)
	}
	return nil
}

// BindQuery decodes and validates the query string.
func BindQuery(c *gin.Context, obj any) error {
	Setup()
	if err := c.ShouldBindQuery(obj); err != nil {
		// gin does not say which key failed number parsing
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return single(queryKeyWithValue(c.Request.URL.Query(), numErr.Num), "type", "",
				fmt.Sprintf("invalid number %q", numErr.Num))
		}
		return Translate(err)
	}
	return nil
}

// queryKeyWithValue returns the first key, in sorted order, carrying raw.
func queryKeyWithValue(values url.Values, raw string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range values[k] {
			if v == raw {
				return k
			}
		}
	}
	return "query"
}

// Translate maps decoding and validator errors to *Error.
func Translate(err error) *Error {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)

	switch {
	case errors.As(err, &verrs):
		out := &Error{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:      fe.Field(),
				Constraint: fe.Tag(),
				Param:      fe.Param(),
				Message:    message(fe.Tag(), fe.Param()),
			})
		}
		return out
	case errors.As(err, &typeErr):
		return single(typeErr.Field, "type", typeErr.Type.String(),
			fmt.Sprintf("must be of type %s, got %s", typeErr.Type.String(), typeErr.Value))
	case errors.As(err, &numErr):
		return single("query", "type", "", fmt.Sprintf("invalid number %q", numErr.Num))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return single("body", "json", "", "malformed JSON")
	case errors.Is(err, io.EOF):
		return single("body", "required", "", "request body is required")
	default:
		return single("body", "invalid", "", err.Error())
	}
}

func single(field, constraint, param, msg string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Constraint: constraint, Param: param, Message: msg}}}
}

func message(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + param
	case "gte", "min":
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte", "max":
		return "must be less than or equal to " + param
	case "datetime":
		return "must be a calendar date (YYYY-MM-DD)"
	default:
		return "failed on " + tag
	}
}
