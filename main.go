package main

import (
	"context"
	"time"

	"github.com/ecodeclub/pawmall/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
func main() {
	// 先触发初始化
	egoApp := ego.New()
	tp := ioc.InitTracer()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			elog.Error("Shutdown tracer", elog.FieldErr(err))
		}
	}()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	// 启动消费者
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for i := range app.Consumers {
		app.Consumers[i].Start(ctx)
	}
	err = egoApp.
		Invoker().
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
			(*egin.Component)(app.Admin)).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
