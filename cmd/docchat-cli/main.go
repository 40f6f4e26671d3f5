package main

import "github.com/nfrund/docchat/cmd/docchat-cli/cmd"

func main() {
	cmd.Execute()
}
