package main

import "github.com/LeJamon/goswtc/internal/cli"

func main() {
	cli.Execute()
}
