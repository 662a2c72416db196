package worker

import (
	"github.com/hibiken/asynq"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/provider"
	"github.com/souq-next/internal/queue"
)

// Service 队列 worker 运行时封装
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 创建 worker 服务
func NewService(container *provider.Container) *Service {
	cfg := container.Config.Queue
	redisOpt, serverCfg := queue.BuildServerConfig(queue.Config{
		Enable:      cfg.Enable,
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		Concurrency: cfg.Concurrency,
	})

	mux := asynq.NewServeMux()
	NewConsumer(container).Register(mux)

	return &Service{
		server: asynq.NewServer(redisOpt, serverCfg),
		mux:    mux,
	}
}

// Name 服务名
func (s *Service) Name() string {
	return "worker"
}

// Start 启动 worker（阻塞直到 Stop）
func (s *Service) Start() error {
	logger.Infow("worker_start")
	return s.server.Run(s.mux)
}

// Stop 优雅停止
func (s *Service) Stop() {
	s.server.Shutdown()
	logger.Infow("worker_stop")
}
