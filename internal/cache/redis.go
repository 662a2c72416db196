package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/logger"
)

var (
	client *redis.Client
	prefix = constants.RedisPrefixDefault
)

// Config Redis 连接配置
type Config struct {
	Enable   bool
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// InitRedis 初始化 Redis 连接。未启用或连接失败时缓存整体降级，
// 读写调用全部走穿透路径。
func InitRedis(cfg Config) error {
	if !cfg.Enable {
		client = nil
		return nil
	}
	if cfg.Prefix != "" {
		prefix = cfg.Prefix
	}
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis_connect_failed", "addr", cfg.Addr, "error", err)
		client = nil
		return err
	}
	client = c
	logger.Infow("redis_connected", "addr", cfg.Addr, "db", cfg.DB)
	return nil
}

// Enabled 缓存是否可用
func Enabled() bool {
	return client != nil
}

// Client 返回底层客户端（限流等直接操作用）
func Client() *redis.Client {
	return client
}

func buildKey(key string) string {
	return fmt.Sprintf("%s:%s", prefix, key)
}

// GetJSON 读取并反序列化缓存值。未命中返回 false。
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, buildKey(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化并写入缓存值
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, buildKey(key), raw, ttl).Err()
}

// Del 删除缓存键
func Del(ctx context.Context, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = buildKey(k)
	}
	return client.Del(ctx, full...).Err()
}

// Close 关闭连接
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
