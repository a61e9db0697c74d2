package main

import "github.com/tessro/coverclock/internal/cli"

func main() {
	cli.Execute()
}
