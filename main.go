// Package main is the entry point for the boxkit application.
package main

import (
	"github.com/boxkit/boxkit/cmd"
	"github.com/boxkit/boxkit/config"
	"github.com/boxkit/boxkit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
