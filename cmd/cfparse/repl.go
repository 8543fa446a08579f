package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// repl starts interactive mode. Every line entered is checked with the parser
// selected by the command line flags. Quit with <ctrl>D.
func (chk *checker) repl() error {
	rl, err := readline.New("cfparse> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	chk.showSteps = false
	pterm.Info.Println("Welcome to cfparse. Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := chk.check(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
	return nil
}
