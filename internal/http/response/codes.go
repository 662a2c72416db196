package response

// 业务响应码。0 表示成功，4xxx 为客户端错误，5xxx 为服务端错误。
const (
	CodeSuccess = 0

	CodeBadRequest   = 4000
	CodeUnauthorized = 4001
	CodeForbidden    = 4003
	CodeNotFound     = 4004
	CodeConflict     = 4009
	CodeRateLimited  = 4029

	CodeInternalError = 5000
)
