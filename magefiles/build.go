//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
)

const binDir = "bin"

type Build mg.Namespace

// Builds the desktop window binary.
func (Build) Desktop() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", binDir+"/spaceshooter", "."), withStream())
	return err
}

// Builds the terminal binary.
func (Build) Terminal() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", binDir+"/spaceshooter-term", "./cmd/terminal"), withStream())
	return err
}

// Binds the mobile package into an Android archive. Needs ebitenmobile and
// the Android SDK/NDK.
func (Build) Android() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	_, err := executeCmd("ebitenmobile", withArgs("bind",
		"-target", "android",
		"-javapkg", "com.spaceshooter",
		"-o", binDir+"/spaceshooter.aar",
		"./mobile",
	), withStream())
	return err
}

// Builds every target.
func (Build) All() {
	mg.SerialDeps(Build.Desktop, Build.Terminal)
}
