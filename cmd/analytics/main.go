package main

import (
	"context"
	"os/signal"
	"syscall"

	"parcel-tracking-service/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildAnalyticsContainer(ctx)
	app.NewAnalyticsRunner().MustRun(container)
}
