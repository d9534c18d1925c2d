package main

import (
	"context"
	"time"

	"github.com/kikuu-commerce/storefront/config"
	"github.com/kikuu-commerce/storefront/internal/app"
	"github.com/kikuu-commerce/storefront/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)

	if err := storefront.WaitReady(sigCtx); err != nil {
		panic(err)
	}

	storefront.Run()

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	storefront.Close(ctx)
}
