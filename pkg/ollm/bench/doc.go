// Package bench 提供 OLLM 代理的性能基准测试
//
// 针对配置的模型列表依次执行两个阶段：
//
//  1. 顺序阶段：单连接逐个请求，度量基线延迟
//  2. 并发阶段：固定并发度同时请求，度量吞吐与尾延迟
//
// 每个阶段记录逐请求延迟，汇总为 p50/p95/p99 等统计量（见 [Summarize]）。
//
// # 快速开始
//
//	cfg, _ := bench.LoadConfigFile("bench.yaml")
//	runner := bench.NewRunner(cfg, logger)
//	reports, err := runner.Run(ctx)
//	bench.RenderReport(os.Stdout, reports)
//
// 配置文件格式（YAML）：
//
//	base_url: http://localhost:4000/v1
//	models:
//	  - gpt-4o-mini
//	  - phala/llama-3.3-70b-instruct
//	prompt: "Write a haiku about distributed systems."
//	warmup: 2
//	iterations: 20
//	concurrency: 8
//	timeout: 60s
//
// API Key 来自配置文件的 api_key 字段或 OLLM_API_KEY 环境变量。
//
// 基准请求直接发往 /chat/completions，不经过模型句柄，以免度量中混入
// 适配层本身的开销。
package bench
