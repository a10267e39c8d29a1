package main

import "github.com/sanixdarker/gqlmd/internal/cli"

func main() {
	cli.Execute()
}
