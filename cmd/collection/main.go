package main

import "github.com/zerofoolcoder/collectionsjs/internal/cli"

func main() {
	cli.Execute()
}
