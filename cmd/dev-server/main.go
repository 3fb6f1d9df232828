package main

import "github.com/silbinarywolf/toy-offside-board/cmd/dev-server/internal/devwebserver"

func main() {
	devwebserver.Serve()
}
