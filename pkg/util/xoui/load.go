package xoui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// 字段数边界：前缀、短名称、[完整名称]、[注释]。
const (
	minFields = 2
	maxFields = 4
)

// entryLine 记录条目及其来源行，用于重复检测时报告位置。
type entryLine struct {
	Entry
	line int
	text string
}

// Load 解析 Wireshark manuf 格式的厂商数据并构建查找表。
//
// 每行以 TAB 分隔：前缀（"MAC" 或 "MAC/len"）、短名称、可选完整名称、可选注释。
// 空行和以 '#' 开头的行被跳过；字段去除首尾空白后为空的被丢弃。
//
// 任意一行格式错误即返回 [*LoadError]，不返回部分结果。
func Load(text string, opts ...Option) (*Table, error) {
	return LoadReader(strings.NewReader(text), opts...)
}

// LoadReader 与 [Load] 相同，数据来自 r。
func LoadReader(r io.Reader, opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var rows []entryLine
	sc := bufio.NewScanner(r)
	// 厂商名可能较长，放宽单行上限
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		e, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		rows = append(rows, entryLine{Entry: e, line: line, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("xoui: read: %w", err)
	}

	// 稳定排序：重复项中先出现的排在前面
	slices.SortStableFunc(rows, func(a, b entryLine) int {
		return a.Prefix.Compare(b.Prefix)
	})

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if i > 0 && row.Prefix == rows[i-1].Prefix {
			dupErr := &LoadError{Line: row.line, Kind: KindDuplicate, Text: row.text}
			if o.onDuplicate == nil {
				return nil, dupErr
			}
			o.onDuplicate(dupErr, entries[len(entries)-1], row.Entry)
			continue
		}
		entries = append(entries, row.Entry)
	}
	return &Table{entries: slices.Clip(entries)}, nil
}

// parseLine 解析单个数据行。
func parseLine(line int, text string) (Entry, error) {
	fields := make([]string, 0, maxFields)
	for f := range strings.SplitSeq(text, "\t") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) < minFields || len(fields) > maxFields {
		return Entry{}, &LoadError{Line: line, Kind: KindFieldCount, Text: text, Count: len(fields)}
	}

	prefix, err := ParsePrefix(fields[0])
	if err != nil {
		kind := KindPrefixSyntax
		if errors.Is(err, ErrPrefixLength) {
			kind = KindPrefixLength
		}
		return Entry{}, &LoadError{Line: line, Kind: kind, Text: text, Err: err}
	}

	e := Entry{Prefix: prefix, Vendor: Vendor{Short: fields[1]}}
	if len(fields) > 2 {
		e.Long = fields[2]
	}
	if len(fields) > 3 {
		e.Comment = strings.TrimSpace(strings.Trim(fields[3], "#"))
	}
	return e, nil
}
