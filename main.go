package main

import "github.com/tanq16/chunkfetch/cmd"

func main() {
	cmd.Execute()
}
