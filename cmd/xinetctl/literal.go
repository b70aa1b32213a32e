package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/omeyang/xinet/pkg/business/xinet"
)

var errUnterminatedQuote = errors.New("unterminated quote")

type tokenKind uint8

const (
	tokenWord tokenKind = iota
	tokenQuoted
	tokenBlob
)

type token struct {
	text string
	kind tokenKind
}

// tokenize 按空白切分一行，支持引号和反斜杠转义。
//
// 引号内的内容（包括空串）是一个文本 token；紧跟在 x 或 X 之后的引号
// 组成二进制字面量 x'..'。
func tokenize(line string) ([]token, error) {
	var (
		tokens    []token
		current   strings.Builder
		started   bool
		kind      tokenKind
		quoteChar rune
		escaped   bool
	)
	emit := func() {
		if started {
			tokens = append(tokens, token{text: current.String(), kind: kind})
		}
		current.Reset()
		started, kind = false, tokenWord
	}

	for _, r := range line {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			started, escaped = true, true
			continue
		}

		switch {
		case isQuoteStart(r, quoteChar != 0):
			quoteChar = r
			if started && kind == tokenWord && isBlobMarker(current.String()) {
				current.Reset()
				kind = tokenBlob
			} else if kind == tokenWord {
				kind = tokenQuoted
			}
			started = true
		case isQuoteEnd(r, quoteChar):
			quoteChar = 0
		case isWordSeparator(r, quoteChar != 0):
			emit()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if quoteChar != 0 || escaped {
		return nil, errUnterminatedQuote
	}
	emit()
	return tokens, nil
}

func isQuoteStart(r rune, inQuote bool) bool {
	return (r == '"' || r == '\'') && !inQuote
}

func isQuoteEnd(r, quoteChar rune) bool {
	return quoteChar != 0 && r == quoteChar
}

// 批处理输入来自文件，Tab 与空格同样分词。
func isWordSeparator(r rune, inQuote bool) bool {
	return (r == ' ' || r == '\t') && !inQuote
}

func isBlobMarker(s string) bool {
	return s == "x" || s == "X"
}

// literal 把 token 转为调用参数。
func literal(t token) (xinet.Value, error) {
	switch t.kind {
	case tokenQuoted:
		return xinet.Text(t.text), nil
	case tokenBlob:
		b, err := hex.DecodeString(t.text)
		if err != nil {
			return xinet.Null(), fmt.Errorf("invalid blob literal x'%s': %w", t.text, err)
		}
		return xinet.Blob(b), nil
	}
	switch {
	case strings.EqualFold(t.text, "null"):
		return xinet.Null(), nil
	case strings.EqualFold(t.text, "true"):
		return xinet.Bool(true), nil
	case strings.EqualFold(t.text, "false"):
		return xinet.Bool(false), nil
	default:
		return xinet.Text(t.text), nil
	}
}

// parseArgs 解析命令行参数。每个参数单独按字面量规则解释；
// 含多个 token 的参数（如 shell 引号保留的空格）作为整体文本。
func parseArgs(args []string) ([]xinet.Value, error) {
	values := make([]xinet.Value, 0, len(args))
	for _, arg := range args {
		tokens, err := tokenize(arg)
		if err != nil || len(tokens) != 1 {
			values = append(values, xinet.Text(arg))
			continue
		}
		v, err := literal(tokens[0])
		if err != nil {
			return nil, newUsageError(err.Error())
		}
		values = append(values, v)
	}
	return values, nil
}

// parseCall 解析批处理中的一行 "FUNC arg..."，函数名不区分大小写。
func parseCall(line string) (name string, args []xinet.Value, err error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", nil, err
	}
	if len(tokens) == 0 {
		return "", nil, errors.New("empty call")
	}
	args = make([]xinet.Value, 0, len(tokens)-1)
	for _, t := range tokens[1:] {
		v, err := literal(t)
		if err != nil {
			return "", nil, err
		}
		args = append(args, v)
	}
	return strings.ToUpper(tokens[0].text), args, nil
}
