package main

import (
	"github.com/openshift/managed-resources/pkg/cli"
)

func main() {
	cli.Execute()
}
