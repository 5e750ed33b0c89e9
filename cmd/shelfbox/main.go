package main

import "shelfbox/cmd/shelfbox/cmd"

func main() {
	cmd.Execute()
}
