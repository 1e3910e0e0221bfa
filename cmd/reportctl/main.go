package main

import (
	"context"
	"os"

	"github.com/GregMSThompson/report-cms/internal/cli"
)

func main() {
	code, _ := cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, nil)
	os.Exit(code)
}
