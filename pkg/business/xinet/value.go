package xinet

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Kind 标识 [Value] 的类型。
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindInt
	KindReal
	KindBlob
	KindBool
)

var kindNames = [...]string{
	KindNull: "null",
	KindText: "text",
	KindInt:  "int",
	KindReal: "real",
	KindBlob: "blob",
	KindBool: "bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value 是宿主传入与返回的标量：空值、文本、整数、浮点、二进制或布尔。
//
// 零值即 Null。Value 是不可变值类型，Blob 构造时复制输入。
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    []byte
}

func Null() Value { return Value{} }

func Text(s string) Value { return Value{kind: KindText, s: s} }

func Int(n int64) Value { return Value{kind: KindInt, i: n} }

func Real(f float64) Value { return Value{kind: KindReal, f: f} }

// Blob 复制 b。nil 与空切片都得到零长度 Blob 而非 Null。
func Blob(b []byte) Value {
	return Value{kind: KindBlob, b: append([]byte{}, b...)}
}

func Bool(v bool) Value {
	if v {
		return Value{kind: KindBool, i: 1}
	}
	return Value{kind: KindBool}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsText 返回文本值，非 Text 返回 false。
func (v Value) AsText() (string, bool) {
	return v.s, v.kind == KindText
}

// AsInt 返回整数值，非 Int 返回 false。
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsReal 返回浮点值，非 Real 返回 false。
func (v Value) AsReal() (float64, bool) {
	return v.f, v.kind == KindReal
}

// AsBlob 返回二进制值的副本，非 Blob 返回 false。
func (v Value) AsBlob() ([]byte, bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	return append([]byte{}, v.b...), true
}

// AsBool 返回布尔值，非 Bool 返回 false。
func (v Value) AsBool() (bool, bool) {
	return v.i != 0, v.kind == KindBool
}

// String 返回便于阅读的文本：NULL、文本原样、数字十进制、
// 布尔 true/false、二进制 x'0a000001'。
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBlob:
		var sb strings.Builder
		sb.Grow(3 + 2*len(v.b))
		sb.WriteString("x'")
		sb.WriteString(hex.EncodeToString(v.b))
		sb.WriteByte('\'')
		return sb.String()
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	default:
		return "NULL"
	}
}
