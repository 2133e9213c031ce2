package main

import "cinefront/cmd"

func main() {
	cmd.Execute()
}
