package xmac

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/mdlayher/netx/eui64"
)

// linkLocalPrefix 是 IPv6 链路本地单播前缀 fe80::/64（RFC 4291 §2.5.6）。
var linkLocalPrefix = netip.MustParsePrefix("fe80::/64")

// EUI64 返回 Modified EUI-64 接口标识符（8 字节）。
//
// 构造规则（RFC 4291 附录 A）：在 OUI（前 3 字节）与 NIC（后 3 字节）
// 之间插入 0xff, 0xfe，并将第一字节的 U/L 位（bit 1）取反。
// 取反是对合运算：对 EUI64 结果再做一次 U/L 翻转即可还原首字节。
func (a Addr) EUI64() [8]byte {
	return [8]byte{
		a.bytes[0] ^ 0x02, a.bytes[1], a.bytes[2],
		0xff, 0xfe,
		a.bytes[3], a.bytes[4], a.bytes[5],
	}
}

// EUI64String 返回 Modified EUI-64 的短线分隔小写表示。
// 例如 00:11:22:aa:bb:cc 返回 "02-11-22-ff-fe-aa-bb-cc"。
func (a Addr) EUI64String() string {
	e := a.EUI64()
	// 8*2 + 7 = 23 字节
	var buf [23]byte
	for i, b := range e {
		buf[i*3] = hexLower[b>>4]
		buf[i*3+1] = hexLower[b&0x0f]
		if i < 7 {
			buf[i*3+2] = '-'
		}
	}
	return string(buf[:])
}

// LinkLocal 返回由 MAC 地址推导的 IPv6 链路本地地址：
// fe80::/64 前缀 + Modified EUI-64 接口标识符（RFC 4862 §5.3）。
// 返回 [netip.Addr]，其 String() 为 RFC 5952 规范压缩形式；
// 定宽文本表示见 [Addr.LinkLocalString]。
func (a Addr) LinkLocal() netip.Addr {
	e := a.EUI64()
	var ip [16]byte
	ip[0] = 0xfe
	ip[1] = 0x80
	copy(ip[8:], e[:])
	return netip.AddrFrom16(ip)
}

// LinkLocalString 返回链路本地地址的定宽文本表示：
// "fe80::" 后接 4 组 4 位十六进制（保留组内前导零）。
// 例如 00:11:22:aa:bb:cc 返回 "fe80::0211:22ff:feaa:bbcc"。
//
// 设计决策: 组内保留前导零，使 EUI-64 的 8 个字节在文本中逐字可读；
// 这与 RFC 5952 的规范压缩形式不同（后者由 LinkLocal().String() 给出，
// 如 "fe80::211:22ff:feaa:bbcc"）。两种形式解析回 [netip.Addr] 等价。
func (a Addr) LinkLocalString() string {
	e := a.EUI64()
	// len("fe80::") + 4*4 + 3 = 25 字节
	var buf [25]byte
	copy(buf[:6], "fe80::")
	pos := 6
	for i := 0; i < 8; i += 2 {
		if i > 0 {
			buf[pos] = ':'
			pos++
		}
		buf[pos] = hexLower[e[i]>>4]
		buf[pos+1] = hexLower[e[i]&0x0f]
		buf[pos+2] = hexLower[e[i+1]>>4]
		buf[pos+3] = hexLower[e[i+1]&0x0f]
		pos += 4
	}
	return string(buf[:])
}

// FromLinkLocal 从 EUI-48 推导的 IPv6 链路本地地址恢复 MAC 地址，
// 是 [Addr.LinkLocal] 的逆运算：对任意 a，FromLinkLocal(a.LinkLocal()) == a。
//
// 输入必须位于 fe80::/64，且接口标识符中间包含 0xff, 0xfe 标记字节，
// 否则返回 [ErrInvalidLinkLocal]。Zone 后缀被忽略——MAC 的恢复只依赖
// 地址位，与出接口无关。
func FromLinkLocal(ip netip.Addr) (Addr, error) {
	ip = ip.WithZone("")
	if !linkLocalPrefix.Contains(ip) {
		return Addr{}, fmt.Errorf("%w: %s is not in %s", ErrInvalidLinkLocal, ip, linkLocalPrefix)
	}
	_, hw, err := eui64.ParseIP(net.IP(ip.AsSlice()))
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrInvalidLinkLocal, err)
	}
	// eui64.ParseIP 对无 ff:fe 标记的接口标识符返回 8 字节 EUI-64
	if len(hw) != 6 {
		return Addr{}, fmt.Errorf("%w: interface identifier lacks ff:fe marker", ErrInvalidLinkLocal)
	}
	return FromHardwareAddr(hw)
}
