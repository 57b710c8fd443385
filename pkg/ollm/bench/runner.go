package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm"
)

// ═══════════════════════════════════════════════════════════════════════════
// Runner
// ═══════════════════════════════════════════════════════════════════════════

// Runner 基准执行器
//
// 每个模型依次执行预热、顺序阶段、并发阶段。请求经由 resty 客户端
// 直接发往 /chat/completions。
type Runner struct {
	cfg    *Config
	client *resty.Client
	log    zerolog.Logger
}

// NewRunner 创建基准执行器
func NewRunner(cfg *Config, logger zerolog.Logger) *Runner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.applyDefaults()

	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetTimeout(cfg.RequestTimeout())
	r.SetHeader("Content-Type", "application/json")
	if key := cfg.ResolveAPIKey(); key != "" {
		r.SetHeader("Authorization", "Bearer "+key)
	}

	return &Runner{
		cfg:    cfg,
		client: r,
		log:    logger,
	}
}

// Run 依次对所有配置的模型执行基准
//
// 单个模型的请求失败不会中止整体运行，失败计入 ModelReport.Failures。
// 只有 ctx 取消才会提前返回。
func (r *Runner) Run(ctx context.Context) ([]ModelReport, error) {
	reports := make([]ModelReport, 0, len(r.cfg.Models))

	for _, model := range r.cfg.Models {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		r.log.Info().Str("model", model).Msg("benchmarking model")
		reports = append(reports, r.runModel(ctx, model))
	}

	return reports, nil
}

// runModel 对单个模型执行完整基准
func (r *Runner) runModel(ctx context.Context, model string) ModelReport {
	report := ModelReport{Model: model}

	// 预热（不计入统计）
	for i := 0; i < r.cfg.Warmup; i++ {
		_, _, _ = r.doRequest(ctx, model)
	}

	// 顺序阶段
	sequential := make([]time.Duration, 0, r.cfg.Iterations)
	for i := 0; i < r.cfg.Iterations; i++ {
		if ctx.Err() != nil {
			break
		}
		latency, tokens, err := r.doRequest(ctx, model)
		report.Requests++
		if err != nil {
			report.Failures++
			r.log.Warn().Str("model", model).Err(err).Msg("sequential request failed")
			continue
		}
		report.TotalTokens += tokens
		sequential = append(sequential, latency)
	}
	report.Sequential = Summarize(sequential)

	// 并发阶段
	concurrent, tokens, failures := r.runConcurrent(ctx, model)
	report.Requests += r.cfg.Iterations
	report.Failures += failures
	report.TotalTokens += tokens
	report.Concurrent = Summarize(concurrent)

	return report
}

// runConcurrent 并发阶段：固定并发度消费共同的请求计数
func (r *Runner) runConcurrent(ctx context.Context, model string) ([]time.Duration, int64, int) {
	var (
		mu        sync.Mutex
		latencies []time.Duration
		tokens    int64
		failures  int
	)

	jobs := make(chan struct{}, r.cfg.Iterations)
	for i := 0; i < r.cfg.Iterations; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if ctx.Err() != nil {
					return
				}
				latency, n, err := r.doRequest(ctx, model)

				mu.Lock()
				if err != nil {
					failures++
				} else {
					latencies = append(latencies, latency)
					tokens += n
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return latencies, tokens, failures
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求执行
// ═══════════════════════════════════════════════════════════════════════════

// completionUsage 基准只关心响应中的用量字段
type completionUsage struct {
	Usage struct {
		TotalTokens int64 `json:"total_tokens"`
	} `json:"usage"`
}

// doRequest 发送单个 chat completion 请求，返回延迟和 Token 用量
func (r *Runner) doRequest(ctx context.Context, model string) (time.Duration, int64, error) {
	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": r.cfg.Prompt},
		},
		"max_tokens": r.cfg.MaxTokens,
	}

	var result completionUsage
	start := time.Now()
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	latency := time.Since(start)

	if err != nil {
		return latency, 0, ollm.NewHTTPError("request failed", err)
	}

	if resp.StatusCode() >= 400 {
		// 优先使用代理错误信封中的 error.message
		message := resp.String()
		if data, ok := ollm.ParseErrorData(resp.Body()); ok {
			message = data.ErrorMessage()
		}
		return latency, 0, ollm.NewAPIError(resp.StatusCode(), message)
	}

	return latency, result.Usage.TotalTokens, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 校验
// ═══════════════════════════════════════════════════════════════════════════

// Validate 检查配置可用于运行
func (c *Config) Validate() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("at least one model is required")
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	return nil
}
