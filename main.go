/*
main.go
*/
package main

import (
	"github.com/spartansec/spartanpass/cmd"
	"github.com/spartansec/spartanpass/pkg/logger"
)

func main() {
	logger.InitializeWithFallback()

	cmd.Execute()
}
