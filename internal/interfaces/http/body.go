package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errInvalidBody = errors.New("cuerpo de la petición inválido")

// bodyFields devuelve los campos del cuerpo como texto, sea JSON,
// application/x-www-form-urlencoded o multipart/form-data. En JSON los números
// y booleanos se convierten a su representación textual ("3", "true").
func bodyFields(c *fiber.Ctx) (map[string]string, error) {
	return readBody(c, false)
}

// bodyStrings como bodyFields, pero en JSON solo conserva los valores de tipo
// string; números y booleanos cuentan como ausentes.
func bodyStrings(c *fiber.Ctx) (map[string]string, error) {
	return readBody(c, true)
}

func readBody(c *fiber.Ctx, stringsOnly bool) (map[string]string, error) {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		return jsonFields(c.Body(), stringsOnly)
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errInvalidBody
		}
		out := make(map[string]string, len(form.Value))
		for k, v := range form.Value {
			if len(v) > 0 {
				out[k] = v[0]
			}
		}
		return out, nil
	default:
		out := map[string]string{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			out[string(k)] = string(v)
		})
		return out, nil
	}
}

func jsonFields(raw []byte, stringsOnly bool) (map[string]string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]string{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errInvalidBody
	}
	out := make(map[string]string, len(m))
	// nil, objetos y arrays se omiten: el campo cuenta como ausente.
	for k, v := range m {
		switch t := v.(type) {
		case string:
			out[k] = t
		case json.Number:
			if !stringsOnly {
				out[k] = t.String()
			}
		case bool:
			if !stringsOnly {
				out[k] = strconv.FormatBool(t)
			}
		}
	}
	return out, nil
}
