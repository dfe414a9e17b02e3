package main

import "github.com/mj1618/spaces-cli/cmd"

func main() {
	cmd.Execute()
}
