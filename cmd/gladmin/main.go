package main

import "github.com/ugordi/gladialore-admin/internal/cli"

func main() {
	cli.Execute()
}
