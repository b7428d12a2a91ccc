package main

import (
	"github.com/mazzegi/strbox/cmd/strbox/cmd"
	"github.com/mazzegi/strbox/errorx"
)

func main() {
	errorx.ExitWhen(cmd.Execute())
}
