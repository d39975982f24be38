package main

import (
	"github.com/Adityakumarsinghstm/ChatBot/cmd"
)

func main() {
	cmd.Execute()
}
