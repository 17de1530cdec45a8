package convert

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Built-in type tags.
const (
	String  Type = "string"
	Bool    Type = "bool"
	Char    Type = "char"
	Int     Type = "int"
	Int8    Type = "int8"
	Int16   Type = "int16"
	Int32   Type = "int32"
	Int64   Type = "int64"
	Uint    Type = "uint"
	Uint8   Type = "uint8"
	Uint16  Type = "uint16"
	Uint32  Type = "uint32"
	Uint64  Type = "uint64"
	Float32 Type = "float32"
	Float64 Type = "float64"
	Path    Type = "path"
)

// Builtins returns a fresh converter for every built-in type.
func Builtins() []Converter {
	return []Converter{
		NewFunc(String, parseString),
		NewFunc(Bool, parseBool),
		NewFunc(Char, parseChar),
		NewFunc(Int, signed[int](Int, strconv.IntSize)),
		NewFunc(Int8, signed[int8](Int8, 8)),
		NewFunc(Int16, signed[int16](Int16, 16)),
		NewFunc(Int32, signed[int32](Int32, 32)),
		NewFunc(Int64, signed[int64](Int64, 64)),
		NewFunc(Uint, unsigned[uint](Uint, strconv.IntSize)),
		NewFunc(Uint8, unsigned[uint8](Uint8, 8)),
		NewFunc(Uint16, unsigned[uint16](Uint16, 16)),
		NewFunc(Uint32, unsigned[uint32](Uint32, 32)),
		NewFunc(Uint64, unsigned[uint64](Uint64, 64)),
		NewFunc(Float32, float[float32](Float32, 32)),
		NewFunc(Float64, float[float64](Float64, 64)),
		NewFunc(Path, parseString),
	}
}

func parseString(raw string) (string, error) { return raw, nil }

// parseBool accepts true/false in any case, and 1/0.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, &ParseError{Type: Bool, Raw: raw}
}

// parseChar accepts exactly one character.
func parseChar(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, &ParseError{Type: Char, Raw: raw}
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r, nil
}

func signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](typ Type, bits int) func(string) (T, error) {
	return func(raw string) (T, error) {
		n, err := strconv.ParseInt(raw, 10, bits)
		if err != nil {
			return 0, &ParseError{Type: typ, Raw: raw, Err: err}
		}
		return T(n), nil
	}
}

func unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](typ Type, bits int) func(string) (T, error) {
	return func(raw string) (T, error) {
		n, err := strconv.ParseUint(raw, 10, bits)
		if err != nil {
			return 0, &ParseError{Type: typ, Raw: raw, Err: err}
		}
		return T(n), nil
	}
}

func float[T ~float32 | ~float64](typ Type, bits int) func(string) (T, error) {
	return func(raw string) (T, error) {
		f, err := strconv.ParseFloat(raw, bits)
		if err != nil {
			return 0, &ParseError{Type: typ, Raw: raw, Err: err}
		}
		return T(f), nil
	}
}
