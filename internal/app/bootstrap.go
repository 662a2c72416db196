package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/souq-next/internal/logger"
)

// Run 并行启动所有服务，收到退出信号或任一服务出错时整体停机。
func Run(services ...Service) {
	errCh := make(chan error, len(services))
	for _, svc := range services {
		go func(s Service) {
			logger.Infow("service_start", "name", s.Name())
			if err := s.Start(); err != nil {
				logger.Errorw("service_failed", "name", s.Name(), "error", err)
				errCh <- err
				return
			}
			errCh <- nil
		}(svc)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Infow("shutdown_signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			logger.Errorw("shutdown_on_error", "error", err)
		}
	}

	// 逆序停止，先断入口再停后台
	for i := len(services) - 1; i >= 0; i-- {
		services[i].Stop()
	}
	logger.Infow("app_stopped")
}
