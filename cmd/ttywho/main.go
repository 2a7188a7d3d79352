//go:build linux

package main

import "github.com/ttywho/ttywho/internal/app"

func main() {
	app.Execute()
}
