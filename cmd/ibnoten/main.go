package main

import "github.com/aalvaropc/ibnoten/internal/cli"

func main() {
	cli.Execute()
}
