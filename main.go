package main

import (
	"context"

	"github.com/ecodeclub/jobboard/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/sdk/trace"
)

// go run main.go --config=config/config.yaml
// .env 里面的变量会在读取配置之前加载
func main() {
	if err := godotenv.Load(); err != nil {
		elog.DefaultLogger.Info("没有找到 .env 文件", elog.FieldErr(err))
	}
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	defer func(tp *trace.TracerProvider) {
		err := tp.Shutdown(context.Background())
		if err != nil {
			elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
		}
	}(tp)
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	if err = app.Session.Restore(context.Background()); err != nil {
		elog.DefaultLogger.Error("恢复本地会话失败", elog.FieldErr(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// 启动消费者
	for i := range app.Consumers {
		app.Consumers[i].Start(ctx)
	}
	err = egoApp.
		Invoker().
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
