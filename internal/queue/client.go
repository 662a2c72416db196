package queue

import (
	"time"

	"github.com/hibiken/asynq"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/logger"
)

// Config 队列配置（与缓存共用 Redis 实例，库号独立）
type Config struct {
	Enable      bool
	Addr        string
	Password    string
	DB          int
	Concurrency int
}

// Client asynq 客户端封装
type Client struct {
	inner *asynq.Client
}

// NewClient 创建队列客户端。未启用时返回 nil，调用方按降级处理。
func NewClient(cfg Config) *Client {
	if !cfg.Enable {
		return nil
	}
	return &Client{inner: asynq.NewClient(buildRedisOpt(cfg))}
}

// EnqueueOrderTimeoutCancel 投递订单超时取消延时任务
func (c *Client) EnqueueOrderTimeoutCancel(orderID uint, delay time.Duration) error {
	task, err := NewOrderTimeoutCancelTask(orderID)
	if err != nil {
		return err
	}
	info, err := c.inner.Enqueue(task,
		asynq.ProcessIn(delay),
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}
	logger.Debugw("task_enqueued",
		"task_id", info.ID,
		"type", info.Type,
		"order_id", orderID,
	)
	return nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.inner == nil {
		return nil
	}
	return c.inner.Close()
}

// BuildServerConfig 构建 worker 侧的 asynq 服务配置
func BuildServerConfig(cfg Config) (asynq.RedisClientOpt, asynq.Config) {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	return buildRedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			constants.QueueDefault: 1,
		},
		Logger: logger.S(),
	}
}

func buildRedisOpt(cfg Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
