package main

import (
	"github.com/joho/godotenv"

	"github.com/mbeaudet/clinicbase/cmd"
)

func main() {
	godotenv.Load()
	cmd.Execute()
}
