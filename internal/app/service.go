// Package app 进程生命周期管理
package app

// Service 可运行服务。Start 阻塞直到 Stop 被调用或自身出错。
type Service interface {
	Name() string
	Start() error
	Stop()
}
