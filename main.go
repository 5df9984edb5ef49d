package main

import "github.com/alexiusacademia/gocfs/cmd"

func main() {
	cmd.Execute()
}
