package main

import "github.com/mcoot/wordlegame/internal/cli"

func main() {
	cli.Execute()
}
