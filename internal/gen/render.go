package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

const termsPerLine = 8

var arraysTmpl = template.Must(template.New("arrays").Parse(`// Code generated by asslicegen. DO NOT EDIT.

package asslice

// FixedArray is the closed set of native array shapes that can be viewed
// as a slice of T. The lengths are listed in catalogue.yaml.
type FixedArray[T any] interface {
	{{.}}
}
`))

var numeralsTmpl = template.Must(template.New("numerals").Parse(`// Code generated by asslicegen. DO NOT EDIT.

package {{.Package}}

{{range .Numerals}}type {{$.Prefix}}{{.N}} = {{.Expr}}
{{end}}`))

type numeral struct {
	N    int
	Expr string
}

// BinaryNumeral spells n as a typenum numeral, most significant bit first.
func BinaryNumeral(n int) string {
	expr := "UTerm"
	if n == 0 {
		return expr
	}
	for _, b := range strconv.FormatInt(int64(n), 2) {
		expr = fmt.Sprintf("UInt[%s, B%c]", expr, b)
	}
	return expr
}

// DecimalNumeral spells n as a genarray/v1 numeral, most significant digit
// first.
func DecimalNumeral(n int) string {
	expr := "Z"
	if n == 0 {
		return expr
	}
	for _, d := range strconv.Itoa(n) {
		expr = fmt.Sprintf("Dec[%s, D%c]", expr, d)
	}
	return expr
}

// RenderArrays renders the FixedArray constraint over lengths.
func RenderArrays(lengths []int) ([]byte, error) {
	var lines []string
	for i := 0; i < len(lengths); i += termsPerLine {
		end := min(i+termsPerLine, len(lengths))
		terms := make([]string, 0, end-i)
		for _, n := range lengths[i:end] {
			terms = append(terms, fmt.Sprintf("~[%d]T", n))
		}
		lines = append(lines, strings.Join(terms, " | "))
	}
	return execute(arraysTmpl, strings.Join(lines, " |\n\t\t"))
}

// RenderTypenum renders the U<n> aliases of package typenum.
func RenderTypenum(lengths []int) ([]byte, error) {
	return renderNumerals("typenum", "U", lengths, BinaryNumeral)
}

// RenderDecimal renders the N<n> aliases of package genarray/v1.
func RenderDecimal(lengths []int) ([]byte, error) {
	return renderNumerals("genarray", "N", lengths, DecimalNumeral)
}

func renderNumerals(pkg, prefix string, lengths []int, spell func(int) string) ([]byte, error) {
	data := struct {
		Package  string
		Prefix   string
		Numerals []numeral
	}{Package: pkg, Prefix: prefix}
	for _, n := range lengths {
		data.Numerals = append(data.Numerals, numeral{N: n, Expr: spell(n)})
	}
	return execute(numeralsTmpl, data)
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: render %s: %w", t.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format %s: %w", t.Name(), err)
	}
	return src, nil
}
