package main

import (
	"github.com/defenseunicorns/lula-sub002/cmd"
)

func main() {
	cmd.Run()
}
