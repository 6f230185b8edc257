// Package main provides the accessor command line: get, has and set values
// at delimited paths of a JSON or YAML document.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
