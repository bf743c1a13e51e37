package main

import (
	"os"

	"github.com/ZanzyTHEbar/matcache/matcache/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
