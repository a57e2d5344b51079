// Package validate centraliza la validación de DTOs con go-playground/validator.
// Las reglas viven en los tags `validate:"..."` de cada DTO; aquí solo se
// registran las reglas propias del dominio.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// FieldError describe una regla incumplida por un campo.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param)
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Rule)
}

// Error agrupa los campos inválidos de una validación.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return "validación: " + strings.Join(parts, ", ")
}

// Struct valida s según sus tags. Devuelve *Error si algún campo falla.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		// Los errores usan el nombre JSON del campo (supplierId, leadTime...).
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "decimal_gte0", decimalNonNegative)
		mustRegister(v, "int_gte0", intAtLeast(0))
		mustRegister(v, "int_gt0", intAtLeast(1))
		mustRegister(v, "notblank", notBlank)
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validate: registrar " + tag + ": " + err.Error())
	}
}

// decimalNonNegative acepta strings numéricos decimales >= 0.
func decimalNonNegative(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// intAtLeast acepta strings con un entero >= min que quepa en 32 bits
// (columnas INTEGER de quantity y lead_time).
func intAtLeast(min int64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 32)
		if err != nil {
			return false
		}
		return n >= min
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
