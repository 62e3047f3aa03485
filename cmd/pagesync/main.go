package main

import "pagesync/cmd/pagesync/cmd"

func main() {
	cmd.Execute()
}
