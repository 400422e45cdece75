//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the game in a desktop window.
func (Run) Desktop() error {
	fmt.Println("Run desktop...")
	_, err := executeCmd("go", withArgs("run", "."), withStream())
	return err
}

// Runs the game in the current terminal.
func (Run) Terminal() error {
	fmt.Println("Run terminal...")
	_, err := executeCmd("go", withArgs("run", "./cmd/terminal"), withStream())
	return err
}

// Runs the unit tests with the race detector.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withEnv("CGO_ENABLED=1"), withStream())
	return err
}
