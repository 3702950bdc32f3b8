package binder

import (
	"encoding"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Extractor returns the raw value of a named path parameter.
type Extractor func(r *http.Request, name string) string

// ChiPath binds chi URL parameters.
//
//	type planRequest struct {
//		Tier entitlement.Tier `path:"tier"`
//	}
//
//	r.Post("/subscription/plan/{tier}", handler.Wrap(selectPlan,
//		handler.WithBinders[handler.Context, planRequest](binder.ChiPath()),
//	))
func ChiPath() func(r *http.Request, v any) error {
	return Path(chi.URLParam)
}

// Path binds path parameters into the struct pointed to by v using `path`
// tags. Untagged fields bind by lower-cased field name; `path:"-"` skips a
// field. Fields implementing encoding.TextUnmarshaler parse themselves, so
// enum types can reject unknown values here. Empty parameters leave the field
// untouched.
func Path(extractor Extractor) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: nil extractor", ErrFailedToParsePath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrFailedToParsePath)
		}
		rv = rv.Elem()
		rt := rv.Type()

		for i := range rt.NumField() {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}

			name := strings.ToLower(sf.Name)
			if tag, ok := sf.Tag.Lookup("path"); ok {
				if tag == "-" {
					continue
				}
				name, _, _ = strings.Cut(tag, ",")
			}

			raw := extractor(r, name)
			if raw == "" {
				continue
			}
			if err := setField(rv.Field(i), raw); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrFailedToParsePath, name, err)
			}
		}
		return nil
	}
}

var textUnmarshaler = reflect.TypeFor[encoding.TextUnmarshaler]()

func setField(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setField(field.Elem(), raw)
	}

	if field.CanAddr() && field.Addr().Type().Implements(textUnmarshaler) {
		return field.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw))
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", raw)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", raw)
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid bool value %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}
