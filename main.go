package main

import "github.com/frahmantamala/expense-tracker/cmd"

func main() {
	cmd.Execute()
}
