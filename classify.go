package xmac

// IsUnicast 报告 a 是否为单播地址。
// 单播地址的第一字节 I/G 位（bit 0）为 0，帧只投递给单个接口。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&0x01 == 0
}

// IsMulticast 报告 a 是否为多播地址。
// 多播地址的第一字节 I/G 位（bit 0）为 1。
// 广播地址也是一种特殊的多播地址。
//
// 设计决策: 只看 I/G 位，不做 01:00:5e 之类的协议前缀匹配——
// 前缀只能识别 IPv4 多播映射，IEEE 802 的判定依据是 I/G 位本身。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 1
}

// IsBroadcast 报告 a 是否为广播地址（ff:ff:ff:ff:ff:ff）。
func (a Addr) IsBroadcast() bool {
	return a == broadcastAddr()
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的第一字节 U/L 位（bit 1）为 1。
// 虚拟机、容器等通常使用 LAA。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&0x02 == 0x02
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA）。
// UAA 的第一字节 U/L 位（bit 1）为 0。
// 物理网卡出厂时分配的地址通常是 UAA。
func (a Addr) IsUniversallyAdministered() bool {
	return a.bytes[0]&0x02 == 0
}

// IsZero 报告 a 是否为全零地址（00:00:00:00:00:00），即零值 Addr{}。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// OUI 返回组织唯一标识符（Organizationally Unique Identifier）。
// OUI 是 MAC 地址的前 3 字节，由 IEEE 分配给设备制造商。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// NIC 返回网络接口控制器标识（Network Interface Controller specific）。
// NIC 是 MAC 地址的后 3 字节，由制造商分配。
func (a Addr) NIC() [3]byte {
	return [3]byte{a.bytes[3], a.bytes[4], a.bytes[5]}
}

// OUIString 返回 OUI 的 6 位小写十六进制表示（如 "001122"）。
func (a Addr) OUIString() string {
	var buf [6]byte
	buf[0] = hexLower[a.bytes[0]>>4]
	buf[1] = hexLower[a.bytes[0]&0x0f]
	buf[2] = hexLower[a.bytes[1]>>4]
	buf[3] = hexLower[a.bytes[1]&0x0f]
	buf[4] = hexLower[a.bytes[2]>>4]
	buf[5] = hexLower[a.bytes[2]&0x0f]
	return string(buf[:])
}

// NICString 返回 NIC 的 6 位小写十六进制表示（如 "aabbcc"）。
func (a Addr) NICString() string {
	var buf [6]byte
	buf[0] = hexLower[a.bytes[3]>>4]
	buf[1] = hexLower[a.bytes[3]&0x0f]
	buf[2] = hexLower[a.bytes[4]>>4]
	buf[3] = hexLower[a.bytes[4]&0x0f]
	buf[4] = hexLower[a.bytes[5]>>4]
	buf[5] = hexLower[a.bytes[5]&0x0f]
	return string(buf[:])
}
