package main

import "github.com/rail44/drills/cmd"

func main() {
	cmd.Execute()
}
