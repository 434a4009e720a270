package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/mordor-tools/internal/cli"
)

func main() {

	ctx := context.Background()
	os.Exit(cli.RunGenPassword(ctx, os.Args[1:], cli.StdStreams()))

}
