package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log/slog"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出小写冒号格式（aa:bb:cc:dd:ee:ff）。
// 这同时是 YAML 等基于文本接口的编码格式的桥梁。
func (a Addr) MarshalText() ([]byte, error) {
	// 直接构造 []byte，避免 String() 的 string→[]byte 二次分配。
	return marshalColonBytes(a.bytes), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式；空输入返回 [ErrInvalidFormat]。
// 对 nil 接收者返回 [ErrNilReceiver]。
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

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的小写冒号格式字符串（"aa:bb:cc:dd:ee:ff"）。
//
// MAC 地址字符串仅包含 [0-9a-f:] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	// len(`"`) + 17 + len(`"`) = 19
	buf := make([]byte, 0, 19)
	buf = append(buf, '"')
	buf = append(buf, marshalColonBytes(a.bytes)...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 支持所有 [Parse] 支持的格式。
// null 不修改接收者（与 [time.Time.UnmarshalJSON] 的约定一致——
// 全零地址是合法地址，不能充当 null 的哨兵值）。
// 对 nil 接收者返回 [ErrNilReceiver]。
//
// 此方法应通过 [json.Unmarshal] 间接调用，不建议直接调用。
// 直接调用时 null 匹配为精确字节比较（不去除空白）。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
// 输出 6 字节原始序列（网络字节序）。
func (a Addr) MarshalBinary() ([]byte, error) {
	b := make([]byte, 6)
	copy(b, a.bytes[:])
	return b, nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 输入必须恰好 6 字节，否则返回 [ErrInvalidLength]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]。
// 用于 SQL 数据库写入，输出小写冒号格式字符串。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 用于 SQL 数据库读取。
// 支持 string、[]byte（字符串或 6 字节二进制）输入；
// nil（SQL NULL）设置为零值地址。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		// 6 字节视为二进制格式，适用于 BINARY(6) 列存储的原始 MAC 字节。
		// 文本格式 MAC 最短 12 字符（如 "aabbccddeeff"），不会与 6 字节二进制冲突。
		if len(v) == 6 {
			copy(a.bytes[:], v)
			return nil
		}
		// 其他长度视为字符串格式
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}

// LogValue 实现 [log/slog.LogValuer]。
// 日志输出小写冒号格式字符串。
func (a Addr) LogValue() slog.Value {
	return slog.StringValue(a.String())
}

// marshalColonBytes 构造小写冒号格式的字节切片（17 字节）。
func marshalColonBytes(b [6]byte) []byte {
	buf := make([]byte, 17)
	buf[0] = hexLower[b[0]>>4]
	buf[1] = hexLower[b[0]&0x0f]
	buf[2] = ':'
	buf[3] = hexLower[b[1]>>4]
	buf[4] = hexLower[b[1]&0x0f]
	buf[5] = ':'
	buf[6] = hexLower[b[2]>>4]
	buf[7] = hexLower[b[2]&0x0f]
	buf[8] = ':'
	buf[9] = hexLower[b[3]>>4]
	buf[10] = hexLower[b[3]&0x0f]
	buf[11] = ':'
	buf[12] = hexLower[b[4]>>4]
	buf[13] = hexLower[b[4]&0x0f]
	buf[14] = ':'
	buf[15] = hexLower[b[5]>>4]
	buf[16] = hexLower[b[5]&0x0f]
	return buf
}
