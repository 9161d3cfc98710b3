package main

import (
	"os"
	"runtime/debug"

	"github.com/mezonai/certledger/cmd"
	"github.com/mezonai/certledger/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("CERTLEDGER CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
