package main

import "camrental/cmd/admin/commands"

func main() {
	commands.Execute()
}
