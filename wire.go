package desktopapi

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// message is implemented by every generated payload type.
type message interface {
	appendFields(b []byte) []byte
	decodeField(num protowire.Number, typ protowire.Type, b []byte) (int, error)
}

var (
	errWireType    = errors.New("desktopapi: wrong wire type")
	errInvalidUTF8 = errors.New("desktopapi: string field contains invalid UTF-8")
	errNilMessage  = errors.New("desktopapi: nil message")
)

type varintValue interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

type zigzagValue interface {
	~int32 | ~int64
}

type fixed32Value interface {
	~int32 | ~uint32
}

type fixed64Value interface {
	~int64 | ~uint64
}

func marshalMessage(m message) ([]byte, error) {
	if m == nil {
		return nil, errNilMessage
	}
	return m.appendFields(nil), nil
}

func unmarshalMessage(b []byte, m message) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := m.decodeField(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		b = b[n:]
	}
	return nil
}

// skipField consumes a field the generated type does not know about.
func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func appendVarint[T varintValue](b []byte, num protowire.Number, v T) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendZigZag[T zigzagValue](b []byte, num protowire.Number, v T) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendFixed32[T fixed32Value](b []byte, num protowire.Number, v T) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, uint32(v))
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendFixed64[T fixed64Value](b []byte, num protowire.Number, v T) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, uint64(v))
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendMessage(b []byte, num protowire.Number, m message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendFields(nil))
}

// appendPacked writes vs as one length-delimited run using enc for each
// element. Empty slices write nothing.
func appendPacked[T any](b []byte, num protowire.Number, vs []T, enc func([]byte, T) []byte) []byte {
	if len(vs) == 0 {
		return b
	}
	var run []byte
	for _, v := range vs {
		run = enc(run, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, run)
}

func appendPackedVarint[T varintValue](b []byte, num protowire.Number, vs []T) []byte {
	return appendPacked(b, num, vs, func(b []byte, v T) []byte { return protowire.AppendVarint(b, uint64(v)) })
}

func appendPackedZigZag[T zigzagValue](b []byte, num protowire.Number, vs []T) []byte {
	return appendPacked(b, num, vs, func(b []byte, v T) []byte {
		return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
	})
}

func appendPackedBool(b []byte, num protowire.Number, vs []bool) []byte {
	return appendPacked(b, num, vs, func(b []byte, v bool) []byte { return protowire.AppendVarint(b, protowire.EncodeBool(v)) })
}

func appendPackedFixed32[T fixed32Value](b []byte, num protowire.Number, vs []T) []byte {
	return appendPacked(b, num, vs, func(b []byte, v T) []byte { return protowire.AppendFixed32(b, uint32(v)) })
}

func appendPackedFloat(b []byte, num protowire.Number, vs []float32) []byte {
	return appendPacked(b, num, vs, func(b []byte, v float32) []byte { return protowire.AppendFixed32(b, math.Float32bits(v)) })
}

func appendPackedFixed64[T fixed64Value](b []byte, num protowire.Number, vs []T) []byte {
	return appendPacked(b, num, vs, func(b []byte, v T) []byte { return protowire.AppendFixed64(b, uint64(v)) })
}

func appendPackedDouble(b []byte, num protowire.Number, vs []float64) []byte {
	return appendPacked(b, num, vs, func(b []byte, v float64) []byte { return protowire.AppendFixed64(b, math.Float64bits(v)) })
}

func checkType(got, want protowire.Type) error {
	if got != want {
		return fmt.Errorf("%w: got %d want %d", errWireType, got, want)
	}
	return nil
}

func consumeVarint[T varintValue](typ protowire.Type, b []byte, out *T) (int, error) {
	if err := checkType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = T(v)
	return n, nil
}

func consumeZigZag[T zigzagValue](typ protowire.Type, b []byte, out *T) (int, error) {
	if err := checkType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = T(protowire.DecodeZigZag(v))
	return n, nil
}

func consumeBool(typ protowire.Type, b []byte, out *bool) (int, error) {
	if err := checkType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = protowire.DecodeBool(v)
	return n, nil
}

func consumeFixed32[T fixed32Value](typ protowire.Type, b []byte, out *T) (int, error) {
	if err := checkType(typ, protowire.Fixed32Type); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = T(v)
	return n, nil
}

func consumeFloat(typ protowire.Type, b []byte, out *float32) (int, error) {
	if err := checkType(typ, protowire.Fixed32Type); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = math.Float32frombits(v)
	return n, nil
}

func consumeFixed64[T fixed64Value](typ protowire.Type, b []byte, out *T) (int, error) {
	if err := checkType(typ, protowire.Fixed64Type); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = T(v)
	return n, nil
}

func consumeDouble(typ protowire.Type, b []byte, out *float64) (int, error) {
	if err := checkType(typ, protowire.Fixed64Type); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = math.Float64frombits(v)
	return n, nil
}

func consumeString(typ protowire.Type, b []byte, out *string) (int, error) {
	if err := checkType(typ, protowire.BytesType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if !utf8.Valid(v) {
		return 0, errInvalidUTF8
	}
	*out = string(v)
	return n, nil
}

func consumeBytes(typ protowire.Type, b []byte, out *[]byte) (int, error) {
	if err := checkType(typ, protowire.BytesType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*out = append([]byte{}, v...)
	return n, nil
}

// consumeMessage merges the length-delimited payload at b into m.
func consumeMessage(typ protowire.Type, b []byte, m message) (int, error) {
	if err := checkType(typ, protowire.BytesType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := unmarshalMessage(v, m); err != nil {
		return 0, err
	}
	return n, nil
}

// consumeRepeated appends one element, or a packed run of elements, to out.
// elem is the element's own wire type; a BytesType field of a non-bytes
// element is a packed run.
func consumeRepeated[T any](typ protowire.Type, b []byte, out *[]T, elem protowire.Type, one func(protowire.Type, []byte, *T) (int, error)) (int, error) {
	if typ == protowire.BytesType && elem != protowire.BytesType {
		run, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(run) > 0 {
			var v T
			m, err := one(elem, run, &v)
			if err != nil {
				return 0, err
			}
			*out = append(*out, v)
			run = run[m:]
		}
		return n, nil
	}
	var v T
	n, err := one(typ, b, &v)
	if err != nil {
		return 0, err
	}
	*out = append(*out, v)
	return n, nil
}
