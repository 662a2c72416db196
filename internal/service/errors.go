package service

import "errors"

// 业务语义错误。handler 层统一映射为响应码。
var (
	ErrInvalidInput        = errors.New("无效的请求参数")
	ErrProductNotFound     = errors.New("商品不存在")
	ErrProductNotAvailable = errors.New("商品已下架")
	ErrCategoryNotFound    = errors.New("分类不存在")
	ErrSaleScopeInvalid    = errors.New("无效的活动范围")
	ErrCouponNotFound      = errors.New("优惠券不存在或已停用")
	ErrCouponScopeInvalid  = errors.New("无效的优惠券范围")
	ErrCouponScopeMismatch = errors.New("优惠券不适用于当前商品")
	ErrCartItemInvalid     = errors.New("无效的购物车条目")
	ErrDeliveryTierInvalid = errors.New("无效的配送区域")
	ErrEmptyCart           = errors.New("购物车为空")
	ErrOrderNotFound       = errors.New("订单不存在")
	ErrOrderStatusInvalid  = errors.New("订单状态不允许此操作")
)
