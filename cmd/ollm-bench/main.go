// ollm-bench 对 OLLM 代理执行延迟/吞吐基准测试
//
// 用法：
//
//	ollm-bench -config bench.yaml
//	ollm-bench -base-url http://localhost:4000/v1 -models gpt-4o-mini,phala/llama-3.3-70b-instruct
//
// 依次对每个模型执行顺序与并发两个阶段，输出 p50/p95/p99 等统计。
// 所有请求都失败时以非零状态码退出。
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm/bench"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML 配置文件路径")
		baseURL     = flag.String("base-url", "", "覆盖代理端点地址")
		models      = flag.String("models", "", "覆盖模型列表（逗号分隔）")
		iterations  = flag.Int("iterations", 0, "覆盖每阶段请求数")
		concurrency = flag.Int("concurrency", 0, "覆盖并发度")
		verbose     = flag.Bool("v", false, "输出调试日志")
	)
	flag.Parse()

	logger := newLogger(*verbose)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	// 命令行覆盖
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *models != "" {
		cfg.Models = splitModels(*models)
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := bench.NewRunner(cfg, logger)

	start := time.Now()
	reports, err := runner.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("benchmark interrupted")
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("models", len(reports)).Msg("benchmark finished")

	bench.RenderReport(os.Stdout, reports)

	// 全部失败视为基准失败
	allFailed := len(reports) > 0
	for _, r := range reports {
		if !r.Failed() {
			allFailed = false
			break
		}
	}
	if allFailed {
		os.Exit(1)
	}
}

// newLogger 创建控制台日志
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadConfig 加载配置文件，未指定时使用默认配置
func loadConfig(path string) (*bench.Config, error) {
	if path == "" {
		return bench.DefaultConfig(), nil
	}
	return bench.LoadConfigFile(path)
}

// splitModels 解析逗号分隔的模型列表
func splitModels(s string) []string {
	parts := strings.Split(s, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			models = append(models, p)
		}
	}
	return models
}
