package main

import "github.com/llehouerou/deezer-flow/internal/cli"

func main() {
	cli.Execute()
}
