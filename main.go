package main

import "github.com/brasketbro/lovenest/internal/app"

func main() {
	app.Run()
}
