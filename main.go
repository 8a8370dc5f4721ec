package main

import "anvaya-club/cmd/server"

func main() {
	server.Init()
	server.Run()
}
