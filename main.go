package main

import "github.com/theirongolddev/nestplan/cmd"

func main() {
	cmd.Execute()
}
