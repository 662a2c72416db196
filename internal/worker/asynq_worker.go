package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/provider"
	"github.com/souq-next/internal/queue"
)

// Consumer 队列任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(container *provider.Container) *Consumer {
	return &Consumer{Container: container}
}

// Register 注册任务处理器
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskOrderTimeoutCancel, c.handleOrderTimeoutCancel)
}

// handleOrderTimeoutCancel 待确认订单到期取消
func (c *Consumer) handleOrderTimeoutCancel(ctx context.Context, task *asynq.Task) error {
	var payload queue.OrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// 载荷损坏无法重试，直接丢弃
		return fmt.Errorf("bad payload: %v: %w", err, asynq.SkipRetry)
	}
	if err := c.OrderService.CancelIfExpired(payload.OrderID); err != nil {
		logger.Errorw("order_timeout_cancel_failed",
			"order_id", payload.OrderID,
			"error", err,
		)
		return err
	}
	return nil
}
