package main

import (
	"bsp-dump/cli"
)

func main() {
	cli.Start()
}
