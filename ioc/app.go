package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web   *egin.Component
	Admin AdminServer
	// Consumers 常驻的消息消费者，进程启动时拉起
	Consumers []Consumer
}

type Consumer interface {
	Start(ctx context.Context)
}
