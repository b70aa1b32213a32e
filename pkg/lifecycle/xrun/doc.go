// Package xrun 基于 errgroup 管理命令行进程中的并发任务与信号退出。
//
// [Main] 运行一个主任务，收到 SIGINT/SIGTERM 时取消它并返回 [*SignalError]：
//
//	err := xrun.Main(ctx, func(ctx context.Context) error {
//	    return app.Run(ctx, os.Args)
//	}, xrun.WithLogger(logger))
//	var sigErr *xrun.SignalError
//	if errors.As(err, &sigErr) {
//	    os.Exit(sigErr.ExitCode())
//	}
//
// [Group] 并发运行多个任务，任一失败时取消其余任务：
//
//	g, ctx := xrun.NewGroup(ctx, xrun.WithName("batch"))
//	g.GoWithName("processor", process)
//	g.GoWithName("config-watch", watch)
//	err := g.Wait()
package xrun
