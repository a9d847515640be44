package main

import (
	"github.com/pydevtool/pydev/cmd"
)

func main() {
	cmd.Execute()
}
