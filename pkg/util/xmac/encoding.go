package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出小写冒号格式。
func (a Addr) MarshalText() ([]byte, error) {
	return a.AppendFormat(make([]byte, 0, 17), StyleColon, false), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式。对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的小写冒号格式。
//
// MAC 字符串仅包含 [0-9a-f:]，无需转义，直接拼接避免反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 19)
	buf = append(buf, '"')
	buf = a.AppendFormat(buf, StyleColon, false)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 保持接收者不变，与 [encoding/json] 对其他类型的约定一致。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("xmac: decode JSON: %w", err)
	}
	return a.UnmarshalText([]byte(s))
}

// Value 实现 [driver.Valuer]，写入小写冒号格式字符串。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 6 字节二进制）。SQL NULL 返回 [ErrInvalidLength]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		// 文本 MAC 至少 12 个字符，6 字节只可能是 BINARY(6) 列的原始字节
		if len(v) == 6 {
			copy(a.bytes[:], v)
			return nil
		}
		return a.UnmarshalText(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidLength)
	default:
		return fmt.Errorf("xmac: unsupported scan type %T", src)
	}
}
