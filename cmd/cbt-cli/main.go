package main

import "github.com/nfrund/cbt/cmd/cbt-cli/cmd"

func main() {
	cmd.Execute()
}
