package main

import (
	"github.com/AzielCF/az-citydata/cmd"
)

func main() {
	cmd.Execute()
}
