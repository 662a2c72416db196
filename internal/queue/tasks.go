package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/souq-next/internal/constants"
)

// OrderTimeoutCancelPayload 订单超时取消任务载荷
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderTimeoutCancelTask 构建订单超时取消任务
func NewOrderTimeoutCancelTask(orderID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderTimeoutCancelPayload{OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskOrderTimeoutCancel, payload), nil
}
