package main

import "diskmaid/internal/app"

func main() {
	app.Run()
}
