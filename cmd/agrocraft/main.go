package main

import "github.com/agrocraft-dev/agrocraft-go/internal/cli"

func main() {
	cli.Execute()
}
