package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// 报告
// ═══════════════════════════════════════════════════════════════════════════

// ModelReport 单个模型的基准结果
type ModelReport struct {
	Model       string `json:"model"`
	Requests    int    `json:"requests"`
	Failures    int    `json:"failures"`
	TotalTokens int64  `json:"total_tokens"`

	Sequential Stats `json:"sequential"`
	Concurrent Stats `json:"concurrent"`
}

// Failed 检查该模型是否所有请求都失败
func (r *ModelReport) Failed() bool {
	return r.Requests > 0 && r.Failures == r.Requests
}

// RenderReport 渲染文本格式的基准报告
func RenderReport(w io.Writer, reports []ModelReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	fmt.Fprintln(tw, "MODEL\tPHASE\tREQS\tP50\tP95\tP99\tMEAN\tMIN\tMAX")

	for _, report := range reports {
		writePhase(tw, report.Model, "sequential", report.Sequential)
		writePhase(tw, report.Model, "concurrent", report.Concurrent)
		fmt.Fprintf(tw, "%s\t%s\t%d failed / %d\ttokens: %d\t\t\t\t\t\n",
			report.Model, "total", report.Failures, report.Requests, report.TotalTokens)
	}
}

// writePhase 渲染单个阶段的统计行
func writePhase(w io.Writer, model, phase string, s Stats) {
	fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		model, phase, s.Count,
		round(s.P50), round(s.P95), round(s.P99),
		round(s.Mean), round(s.Min), round(s.Max))
}

// round 截断到毫秒精度，报告可读性优先
func round(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}
