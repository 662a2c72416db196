package service

import "github.com/souq-next/internal/constants"

// allowedTransitions 订单状态机。键为当前状态，值为允许迁移到的状态。
var allowedTransitions = map[string][]string{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed,
		constants.OrderStatusCanceled,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusCompleted,
		constants.OrderStatusCanceled,
	},
	constants.OrderStatusCompleted: {},
	constants.OrderStatusCanceled:  {},
}

// CanTransition 判定状态迁移是否合法
func CanTransition(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
