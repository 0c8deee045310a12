package xsubnet

import "math/big"

// Report 是一次子网计算的完整结果记录。
// 字段均为可直接展示/序列化的形式，主机数量使用 big.Int
// （IPv6 /0 的地址总数为 2^128，超出任何原生整数宽度）。
type Report struct {
	Family          string   `json:"family"`
	CIDR            string   `json:"cidr"`
	PrefixLength    int      `json:"prefix_length"`
	Mask            string   `json:"mask"`
	Network         string   `json:"network"`
	BroadcastOrLast string   `json:"broadcast_or_last"`
	FirstUsable     string   `json:"first_usable"`
	LastUsable      string   `json:"last_usable"`
	TotalHosts      *big.Int `json:"total_hosts"`
	UsableHosts     *big.Int `json:"usable_hosts"`
}

// Describe 由子网生成结果记录。
// 纯函数：相同子网的两次调用产生逐字段相等的 Report。
//
// 边界策略（与 [Subnet.UsableCount] 一致）：
//   - 主机路由（/32、/128）: 全部字段为该地址本身，总数 = 可用 = 1
//   - 点对点（/31、/127）: 首末可用地址即网络地址与末地址，总数 = 可用 = 2
//   - 其余: 可用范围为 (network, broadcast) 开区间，可用 = 总数 − 2
func Describe(s Subnet) Report {
	return Report{
		Family:          s.Family().String(),
		CIDR:            s.String(),
		PrefixLength:    s.PrefixLen(),
		Mask:            FormatAddress(s.Mask()),
		Network:         FormatAddress(s.Network()),
		BroadcastOrLast: FormatAddress(s.Broadcast()),
		FirstUsable:     FormatAddress(s.FirstUsable()),
		LastUsable:      FormatAddress(s.LastUsable()),
		TotalHosts:      s.HostCount(),
		UsableHosts:     s.UsableCount(),
	}
}
