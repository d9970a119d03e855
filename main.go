// Package main is the entry point for the ytui application.
package main

import (
	"github.com/samber/lo"
	"github.com/ytui-cli/ytui/cmd"
	"github.com/ytui-cli/ytui/config"
	"github.com/ytui-cli/ytui/internal/cache"
	"github.com/ytui-cli/ytui/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background pruning of stale cache artifacts.
	go cache.CollectGarbage()

	cmd.Execute()
}
