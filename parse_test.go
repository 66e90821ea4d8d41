package xmac

import (
	"errors"
	"net"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		// 冒号格式
		{"colon_lower", "aa:bb:cc:dd:ee:ff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"colon_upper", "AA:BB:CC:DD:EE:FF", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"colon_mixed_case", "Aa:Bb:Cc:Dd:Ee:Ff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},

		// 短线格式
		{"dash_lower", "aa-bb-cc-dd-ee-ff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"dash_upper", "AA-BB-CC-DD-EE-FF", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},

		// 点格式（Cisco 风格）
		{"dot_lower", "aabb.ccdd.eeff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"dot_upper", "AABB.CCDD.EEFF", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},

		// 无分隔符格式
		{"bare_lower", "aabbccddeeff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"bare_upper", "AABBCCDDEEFF", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"bare_mixed_case", "AaBbCcDdEeFf", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},

		// 空格分隔格式
		{"space_lower", "aa bb cc dd ee ff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"space_upper", "00 11 22 AA BB CC", MustParse("00:11:22:aa:bb:cc"), nil},

		// 宽松语法：分隔符位置与混用不校验
		{"mixed_separators", "aa:bb-cc.dd ee:ff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"dash_halves", "001122-AABBCC", MustParse("00:11:22:aa:bb:cc"), nil},
		{"irregular_groups", "aab:bccd:dee:ff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},

		// 特殊地址
		{"zero", "00:00:00:00:00:00", Addr{}, nil},
		{"broadcast", "ff:ff:ff:ff:ff:ff", Broadcast(), nil},

		// 边界值
		{"min_nonzero", "00:00:00:00:00:01", AddrFrom6([6]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01}), nil},
		{"max_minus_one", "ff:ff:ff:ff:ff:fe", AddrFrom6([6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xfe}), nil},

		// 带空白
		{"leading_space", "  aa:bb:cc:dd:ee:ff", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"trailing_space", "aa:bb:cc:dd:ee:ff  ", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"both_space", "  aa:bb:cc:dd:ee:ff  ", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"padded_dot", " 0011.22aa.bbcc ", MustParse("00:11:22:aa:bb:cc"), nil},
		{"tab_newline_around", "\taabbccddeeff\n", AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},

		// 错误情况
		{"empty", "", Addr{}, ErrInvalidFormat},
		{"only_space", "   ", Addr{}, ErrInvalidFormat},
		{"only_separators", ":-. ", Addr{}, ErrInvalidFormat},
		{"too_short", "aa:bb:cc", Addr{}, ErrInvalidFormat},
		{"too_long", "aa:bb:cc:dd:ee:ff:00", Addr{}, ErrInvalidFormat},
		{"eui64_text", "aa:bb:cc:dd:ee:ff:00:11", Addr{}, ErrInvalidFormat}, // EUI-64 文本不支持
		{"eleven_digits", "aabbccddeef", Addr{}, ErrInvalidFormat},
		{"thirteen_digits", "aabbccddeeff0", Addr{}, ErrInvalidFormat},
		{"invalid_hex", "gg:hh:ii:jj:kk:ll", Addr{}, ErrInvalidFormat},
		{"invalid_bare_hex", "gghhiijjkkll", Addr{}, ErrInvalidFormat},
		{"partial_invalid", "aa:bb:cc:dd:ee:gg", Addr{}, ErrInvalidFormat},
		{"dot_invalid_hex", "ggbb.ccdd.eeff", Addr{}, ErrInvalidFormat},
		{"wrong_separator", "aa;bb;cc;dd;ee;ff", Addr{}, ErrInvalidFormat},
		{"underscore_separator", "aa_bb_cc_dd_ee_ff", Addr{}, ErrInvalidFormat},
		{"inner_tab", "aa\tbb\tcc\tdd\tee\tff", Addr{}, ErrInvalidFormat},
		{"single_digit_groups", "a:b:c:d:e:f", Addr{}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("Parse(%q) error = nil, wantErr %v", tt.input, tt.wantErr)
					return
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Parse(%q) unexpected error = %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParse_LooseSyntax 验证宽松语法与"剥离分隔符后解码"的等价性：
// 任何合法输入剥离分隔符、统一小写后都应等于 FormatBare 输出。
func TestParse_LooseSyntax(t *testing.T) {
	inputs := []string{
		"00:11:22:aa:bb:cc",
		"00-11-22-AA-BB-CC",
		"0011.22aa.bbcc",
		"001122aabbcc",
		"001122-AABBCC",
		"00 11 22 AA BB CC",
		" 0011.22aa.bbcc ",
		"00:11-22.aa bb:cc",
	}

	want := MustParse("00:11:22:aa:bb:cc")
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			if got != want {
				t.Errorf("Parse(%q) = %v, want %v", input, got, want)
			}
			if got.FormatString(FormatBare) != "001122aabbcc" {
				t.Errorf("FormatBare = %q, want 001122aabbcc", got.FormatString(FormatBare))
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	// 正常情况
	t.Run("valid", func(t *testing.T) {
		addr := MustParse("aa:bb:cc:dd:ee:ff")
		want := AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})
		if addr != want {
			t.Errorf("MustParse() = %v, want %v", addr, want)
		}
	})

	// panic 情况
	t.Run("invalid_panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(invalid) did not panic")
			}
		}()
		MustParse("invalid")
	})
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Addr
		wantErr error
	}{
		{"valid", []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"zero", []byte{0, 0, 0, 0, 0, 0}, Addr{}, nil},
		{"broadcast", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, Broadcast(), nil},
		{"too_short", []byte{0xaa, 0xbb, 0xcc}, Addr{}, ErrInvalidLength},
		{"too_long", []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00}, Addr{}, ErrInvalidLength},
		{"empty", []byte{}, Addr{}, ErrInvalidLength},
		{"nil", nil, Addr{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBytes(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseBytes() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseBytes() unexpected error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("ParseBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromHardwareAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   net.HardwareAddr
		want    Addr
		wantErr error
	}{
		{"valid", net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), nil},
		{"too_short", net.HardwareAddr{0xaa, 0xbb, 0xcc}, Addr{}, ErrInvalidLength},
		{"eui64", net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11}, Addr{}, ErrInvalidLength},
		{"infiniband", make(net.HardwareAddr, 20), Addr{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHardwareAddr(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FromHardwareAddr() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("FromHardwareAddr() unexpected error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("FromHardwareAddr() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// 测试解析-格式化往返
	inputs := []string{
		"aa:bb:cc:dd:ee:ff",
		"AA:BB:CC:DD:EE:FF",
		"aa-bb-cc-dd-ee-ff",
		"aabb.ccdd.eeff",
		"aabbccddeeff",
		"aa bb cc dd ee ff",
		"00:00:00:00:00:00",
		"ff:ff:ff:ff:ff:ff",
		"00:00:00:00:00:01",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			addr, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			// 往返测试
			str := addr.String()
			addr2, err := Parse(str)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v (round-trip)", str, err)
			}
			if addr != addr2 {
				t.Errorf("round-trip failed: %v != %v", addr, addr2)
			}
		})
	}
}

// TestParse_ZeroAddress 验证全零地址的一致性行为：
// 解析结果就是零值 Addr{}，且与任何来源的全零地址相等。
func TestParse_ZeroAddress(t *testing.T) {
	addr, err := Parse("00:00:00:00:00:00")
	if err != nil {
		t.Fatalf("Parse(00:00:00:00:00:00) error = %v", err)
	}

	if addr != (Addr{}) {
		t.Errorf("Parse(00:00:00:00:00:00) = %v, want zero value", addr)
	}
	if !addr.IsZero() {
		t.Errorf("zero address IsZero() = false, want true")
	}
	if addr.String() != "00:00:00:00:00:00" {
		t.Errorf("zero address String() = %q, want 00:00:00:00:00:00", addr.String())
	}

	// 与字节数组解析的一致性
	addrFromBytes, err := ParseBytes([]byte{0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("ParseBytes(zeros) error = %v", err)
	}
	if addrFromBytes != addr {
		t.Errorf("ParseBytes(zeros) != Parse(00:00:00:00:00:00)")
	}

	// 与预定义 Zero 的一致性
	if addr != Zero() {
		t.Errorf("Parse(00:00:00:00:00:00) != Zero()")
	}
}
