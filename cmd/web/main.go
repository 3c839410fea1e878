package main

import "issavie_backend/internal/app"

func main() {
	app.Run()
}
