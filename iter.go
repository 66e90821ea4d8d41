package xmac

import "iter"

// Range 返回从 from 到 to（包含两端）的 MAC 地址升序迭代器。
// 如果 from > to，返回空迭代器。
//
// 迭代是对 48 位地址空间的数学遍历，广播、多播等任何地址都可参与。
// 对于大范围建议用 [RangeCount] 预估数量，或用 [RangeN] 限制个数。
//
// 示例：
//
//	from := xmac.MustParse("00:00:00:00:00:01")
//	to := xmac.MustParse("00:00:00:00:00:05")
//	for addr := range xmac.Range(from, to) {
//	    fmt.Println(addr)
//	}
func Range(from, to Addr) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		if from.Compare(to) > 0 {
			return
		}

		current := from
		for {
			if !yield(current) {
				return
			}
			if current == to {
				return
			}
			// 设计决策: 防御性分支——在当前逻辑下 Next() 不会返回 ErrOverflow，
			// 因为 from<=to 且 current==to 时已提前返回。保留此分支以防止
			// 未来修改 Compare 或终止条件时引入溢出风险。
			next, err := current.Next()
			if err != nil {
				return
			}
			current = next
		}
	}
}

// RangeN 返回从 start 开始的 n 个连续 MAC 地址的迭代器。
// 如果 n <= 0，返回空迭代器。
// 到达地址空间上界（ff:ff:ff:ff:ff:ff）时提前终止。
//
// 示例：
//
//	start := xmac.MustParse("00:00:00:00:00:fe")
//	for addr := range xmac.RangeN(start, 5) {
//	    fmt.Println(addr)
//	}
func RangeN(start Addr, n int) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		if n <= 0 {
			return
		}

		current := start
		remaining := n
		for remaining > 0 {
			if !yield(current) {
				return
			}
			remaining--
			// 如果还有更多要迭代，获取下一个
			if remaining > 0 {
				next, err := current.Next()
				if err != nil {
					// 溢出，终止迭代
					return
				}
				current = next
			}
		}
	}
}

// RangeReverse 返回从 from 到 to（包含两端）的 MAC 地址降序迭代器。
// 迭代顺序为从 to 到 from（递减）。
// 如果 from > to，返回空迭代器。
//
// 示例：
//
//	from := xmac.MustParse("00:00:00:00:00:01")
//	to := xmac.MustParse("00:00:00:00:00:05")
//	for addr := range xmac.RangeReverse(from, to) {
//	    fmt.Println(addr)  // 输出: 05, 04, 03, 02, 01
//	}
func RangeReverse(from, to Addr) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		if from.Compare(to) > 0 {
			return
		}

		current := to
		for {
			if !yield(current) {
				return
			}
			if current == from {
				return
			}
			// 设计决策: 防御性分支——在当前逻辑下 Prev() 不会返回 ErrUnderflow，
			// 因为 from<=to 且 current==from 时已提前返回。保留此分支以防止
			// 未来修改 Compare 或终止条件时引入下溢风险。
			prev, err := current.Prev()
			if err != nil {
				return
			}
			current = prev
		}
	}
}

// RangeCount 计算从 from 到 to（包含两端）的地址数量。
// 如果 from > to，返回 0。
// 返回 uint64 以支持大范围（最大 2^48 个地址）。
func RangeCount(from, to Addr) uint64 {
	if from.Compare(to) > 0 {
		return 0
	}
	// MAC 地址最多 48 位，可以用 uint64 表示差值
	return to.Uint64() - from.Uint64() + 1
}
