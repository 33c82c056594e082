package main

import (
	"songscli/cmd"
)

func main() {
	cmd.Execute()
}
