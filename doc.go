// Package xmac 提供 48 位 MAC 地址（EUI-48/MAC-48）的值类型处理。
//
// xmac 围绕不可变值类型 [Addr] 构建：
//
//   - 多格式解析（冒号、短线、点、空格、无分隔符，宽松混用）
//   - 多格式输出（FormatColon, FormatDash, FormatDot, FormatBare 及对应 Upper 变体）
//   - 位级表示（Octets/Bits/BinaryString）与 48 位整数互转（Uint64/AddrFromUint64）
//   - 地址分类（I/G 位单播/多播、U/L 位全球/本地管理、广播）
//   - 派生地址（Modified EUI-64、IPv6 链路本地地址及其逆运算 FromLinkLocal）
//   - JSON/Text/Binary/SQL/slog 序列化支持
//   - 地址运算与迭代（Next/Prev、Range/RangeN/RangeReverse/RangeCount）
//
// # 快速示例
//
// 解析和格式化：
//
//	addr, err := xmac.Parse("00-11-22-AA-BB-CC")
//	fmt.Println(addr.String())                      // 00:11:22:aa:bb:cc
//	fmt.Println(addr.FormatString(xmac.FormatDot))  // 0011.22aa.bbcc
//	fmt.Println(addr.Uint64())                      // 73596058572
//
// 分类判断：
//
//	if addr.IsUnicast() {
//	    // I/G 位为 0，单播地址
//	}
//	if addr.IsLocallyAdministered() {
//	    // U/L 位为 1，本地管理地址（虚拟机/容器常见）
//	}
//
// 派生 IPv6 链路本地地址：
//
//	fmt.Println(addr.EUI64String())     // 02-11-22-ff-fe-aa-bb-cc
//	fmt.Println(addr.LinkLocalString()) // fe80::0211:22ff:feaa:bbcc
//	back, _ := xmac.FromLinkLocal(addr.LinkLocal())
//	// back == addr
//
// JSON 序列化：
//
//	type Asset struct {
//	    MAC xmac.Addr `json:"mac"`
//	}
//	json.Marshal(Asset{MAC: addr})  // {"mac":"00:11:22:aa:bb:cc"}
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组而非 []byte 切片：值语义、可比较、栈分配
//   - 仅支持 EUI-48（6 字节）地址本体；EUI-64（8 字节）只作为派生
//     结果出现（[Addr.EUI64]），不作为可解析的地址类型
//   - 内部统一小写存储，输出格式可选
//   - 解析采用宽松语法：分隔符按字符剥离、位置不校验，详见 [Parse]
//   - 所有格式化与派生运算都是全函数：任何 Addr 值都有确定结果，
//     失败只发生在解析/构造与 Next/Prev 边界运算
//
// # 零值语义
//
// 零值 Addr{} 就是全零地址 00:00:00:00:00:00——一个普通的合法地址
// （I/G 位为 0 故为单播，U/L 位为 0 故为全球管理）。
//
// 设计决策: 不引入 [net/netip.Addr] 式的"零值即无效"概念。[6]byte
// 值类型没有多余的标志位，无法区分"未初始化"与"解析得到的全零地址"；
// 与其让 Parse("00:00:00:00:00:00") 产出一个行为特殊的值，不如让
// Addr 始终表示一个确定的 48 位值，所有方法对全部 2^48 个值一致工作。
// 需要把全零当哨兵的调用方可显式使用 [Addr.IsZero]。
//
//	var addr xmac.Addr           // 零值
//	addr.String()                // "00:00:00:00:00:00"
//	addr.IsZero()                // true
//	addr.IsUnicast()             // true
//	addr == xmac.Zero()          // true
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	addr, err := xmac.Parse("invalid")
//	if errors.Is(err, xmac.ErrInvalidFormat) {
//	    // 文本格式错误
//	}
//
// 文本解析失败统一归于 [ErrInvalidFormat]；字节构造长度错误归于
// [ErrInvalidLength]；Next/Prev/AddrFromUint64 的边界错误归于
// [ErrOverflow]/[ErrUnderflow]；FromLinkLocal 的输入错误归于
// [ErrInvalidLinkLocal]。
//
// # 平台要求
//
// xmac 使用 Go 1.25+ 的 [iter.Seq] 迭代器特性。
// 最低要求 Go 1.25（与项目 go.mod 一致）。
package xmac
