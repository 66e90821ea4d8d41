package xmac

import (
	"fmt"
	"net"
	"strings"
)

// Parse 解析 MAC 地址字符串。
//
// 支持的格式：
//   - 冒号分隔：aa:bb:cc:dd:ee:ff, AA:BB:CC:DD:EE:FF
//   - 短线分隔：aa-bb-cc-dd-ee-ff, AA-BB-CC-DD-EE-FF
//   - 点分隔：aabb.ccdd.eeff, AABB.CCDD.EEFF
//   - 空格分隔：aa bb cc dd ee ff
//   - 无分隔：aabbccddeeff, AABBCCDDEEFF
//
// 语法是宽松的：输入先去除首尾空白，随后按单次扫描剥离任意位置的
// 分隔符（冒号、短线、点、空格），剩余字符必须恰好是 12 个十六进制
// 数字。分隔符的位置和混用不做校验，因此 "001122-AABBCC"、
// "aa:bb-cc.dd ee:ff" 也能解析。大小写不敏感，结果统一小写存储。
//
// 其余任何输入（位数不足/过多、非法字符）返回 [ErrInvalidFormat]。
func Parse(s string) (Addr, error) {
	s = strings.TrimSpace(s)

	// 快速路径：三种定长规范形态。自行解码避免 net.ParseMAC 的堆分配。
	// 仅在完全匹配时生效，未命中或解码失败都交由宽松语法兜底。
	switch len(s) {
	case 12:
		if !containsSeparator(s) {
			if addr, err := parseBare(s); err == nil {
				return addr, nil
			}
		}
	case 17:
		if sep := s[2]; sep == ':' || sep == '-' {
			if addr, err := parseWithSeparator(s, sep); err == nil {
				return addr, nil
			}
		}
	case 14:
		if s[4] == '.' && s[9] == '.' {
			if addr, err := parseDot(s); err == nil {
				return addr, nil
			}
		}
	}

	return parseLoose(s)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 长度必须为 6 字节（EUI-48）。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return ParseBytes([]byte(hw))
}

// parseLoose 按宽松语法解析：单次扫描，跳过任意位置的分隔符，
// 收集十六进制数字，要求恰好 12 个。零堆分配。
//
// 这是 [Parse] 的权威语法，快速路径只是它在定长形态上的特化。
func parseLoose(s string) (Addr, error) {
	var addr Addr
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			continue
		}
		v := hexValue(c)
		if v < 0 {
			return Addr{}, fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidFormat, c, i)
		}
		if n == 12 {
			return Addr{}, fmt.Errorf("%w: more than 12 hex digits", ErrInvalidFormat)
		}
		addr.bytes[n>>1] = addr.bytes[n>>1]<<4 | byte(v)
		n++
	}
	if n != 12 {
		return Addr{}, fmt.Errorf("%w: expected 12 hex digits, got %d", ErrInvalidFormat, n)
	}
	return addr, nil
}

// parseWithSeparator 解析 17 字符的冒号/短线分隔格式（xx:xx:xx:xx:xx:xx）。
func parseWithSeparator(s string, sep byte) (Addr, error) {
	// 验证分隔符位置：索引 2, 5, 8, 11, 14
	if s[5] != sep || s[8] != sep || s[11] != sep || s[14] != sep {
		return Addr{}, fmt.Errorf("%w: inconsistent separators", ErrInvalidFormat)
	}

	var addr Addr
	for i := range 6 {
		offset := i * 3 // 每组 2 个十六进制字符 + 1 个分隔符
		b, err := parseHexByte(s[offset], s[offset+1])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, offset)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseDot 解析 14 字符的点分隔格式（xxxx.xxxx.xxxx，Cisco 风格）。
func parseDot(s string) (Addr, error) {
	// 位置映射：0123.5678.abcd（索引 4 和 9 是点）
	// 每个字节对在字符串中的起始偏移量
	offsets := [6]int{0, 2, 5, 7, 10, 12}
	var addr Addr
	for i, off := range offsets {
		b, err := parseHexByte(s[off], s[off+1])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, off)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseBare 解析无分隔符的 12 字符十六进制字符串。
func parseBare(s string) (Addr, error) {
	var addr Addr
	for i := range 6 {
		b, err := parseHexByte(s[i*2], s[i*2+1])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, i*2)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// isSeparator 报告 c 是否为可剥离的 MAC 地址分隔符。
func isSeparator(c byte) bool {
	return c == ':' || c == '-' || c == '.' || c == ' '
}

// containsSeparator 检查字符串是否包含 MAC 地址分隔符。
func containsSeparator(s string) bool {
	return strings.ContainsAny(s, ":-. ")
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, error) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, ErrInvalidFormat
	}
	return byte(h<<4 | l), nil
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
