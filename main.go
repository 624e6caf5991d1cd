package main

import (
	"log"

	"github.com/Abdul1ayev/Tickets/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		log.Fatal(err)
	}
}
