// Package form implementa a coerção numérica aplicada aos formulários no envio.
//
// Os campos chegam como número JSON ou como texto digitado. A leitura segue o
// prefixo numérico do texto ("12abc" vira 12) e entradas sem número viram 0,
// ou nulo nos tipos opcionais.
package form

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseFloat lê o prefixo numérico de s. Retorna ok=false quando não há número.
func ParseFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt lê o prefixo inteiro de s. Retorna ok=false quando não há número.
func ParseInt(s string) (int, bool) {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

// rawText devolve o conteúdo de um valor JSON como texto, sem aspas
func rawText(b []byte) (string, bool) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", false
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return string(b), true
}

// Float é um número decimal que aceita texto; inválido vira 0
type Float float64

// UnmarshalJSON implementa json.Unmarshaler
func (f *Float) UnmarshalJSON(b []byte) error {
	s, _ := rawText(b)
	v, _ := ParseFloat(s)
	*f = Float(v)
	return nil
}

// Value retorna o valor como float64
func (f Float) Value() float64 { return float64(f) }

// Int é um inteiro que aceita texto. Valores decimais são truncados.
type Int int

// UnmarshalJSON implementa json.Unmarshaler
func (i *Int) UnmarshalJSON(b []byte) error {
	s, _ := rawText(b)
	v, _ := ParseInt(s)
	*i = Int(v)
	return nil
}

// Or retorna o valor ou def quando for zero
func (i Int) Or(def int) int {
	if i == 0 {
		return def
	}
	return int(i)
}

// OptionalFloat é nulo quando o campo vem vazio ou sem número
type OptionalFloat struct {
	v     float64
	valid bool
}

// UnmarshalJSON implementa json.Unmarshaler
func (o *OptionalFloat) UnmarshalJSON(b []byte) error {
	s, present := rawText(b)
	if !present {
		*o = OptionalFloat{}
		return nil
	}
	v, ok := ParseFloat(s)
	*o = OptionalFloat{v: v, valid: ok}
	return nil
}

// Ptr retorna nil quando o valor não foi informado
func (o OptionalFloat) Ptr() *float64 {
	if !o.valid {
		return nil
	}
	v := o.v
	return &v
}

// Or retorna o valor informado, inclusive zero, ou def quando ausente
func (o OptionalFloat) Or(def float64) float64 {
	if !o.valid {
		return def
	}
	return o.v
}

// OptionalInt é nulo quando o campo vem vazio ou sem número
type OptionalInt struct {
	v     int
	valid bool
}

// UnmarshalJSON implementa json.Unmarshaler
func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	s, present := rawText(b)
	if !present {
		*o = OptionalInt{}
		return nil
	}
	v, ok := ParseInt(s)
	*o = OptionalInt{v: v, valid: ok}
	return nil
}

// Ptr retorna nil quando o valor não foi informado
func (o OptionalInt) Ptr() *int {
	if !o.valid {
		return nil
	}
	v := o.v
	return &v
}
