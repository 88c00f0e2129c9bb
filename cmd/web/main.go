package main

import "tutorlift_backend/internal/app"

func main() {
	app.Run()
}
