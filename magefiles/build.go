//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles every package in the module.
func (Build) Lib() error {
	if err := goModTidy(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the example program.
func (Build) Example() error {
	if _, err := executeCmd("go", withArgs("build", "./example"), withStream()); err != nil {
		return err
	}
	return nil
}
