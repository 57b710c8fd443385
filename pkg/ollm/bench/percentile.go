package bench

import (
	"math"
	"slices"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// 延迟统计
// ═══════════════════════════════════════════════════════════════════════════

// Stats 一组延迟样本的汇总统计
type Stats struct {
	Count int           `json:"count"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
	Mean  time.Duration `json:"mean"`
	P50   time.Duration `json:"p50"`
	P95   time.Duration `json:"p95"`
	P99   time.Duration `json:"p99"`
}

// Summarize 汇总延迟样本
//
// 输入无需有序，内部排序副本，不修改原切片。空输入返回零值统计。
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, s := range sorted {
		total += s
	}

	return Stats{
		Count: len(sorted),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Mean:  total / time.Duration(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
	}
}

// percentile 最近秩法计算分位数
//
// sorted 必须升序。
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}
