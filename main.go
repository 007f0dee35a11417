package main

import "practice-ledger/cmd"

func main() {
	cmd.Execute()
}
