package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidFormat 表示 MAC 地址文本格式无效
	// （去除分隔符后十六进制位数不足/过多，或包含非法字符）。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrInvalidLength 表示 MAC 地址字节长度不正确（期望 6 字节）。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrInvalidLinkLocal 表示输入不是由 EUI-48 推导的 IPv6 链路本地地址。
	ErrInvalidLinkLocal = errors.New("xmac: invalid link-local address")

	// ErrOverflow 表示地址运算溢出（超过 ff:ff:ff:ff:ff:ff）。
	ErrOverflow = errors.New("xmac: address overflow")

	// ErrUnderflow 表示地址运算下溢（低于 00:00:00:00:00:00）。
	ErrUnderflow = errors.New("xmac: address underflow")

	// ErrNilReceiver 表示在 nil 接收者上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
