package main

import "daylog/cmd/daylog"

func main() {
	daylog.Execute()
}
