package main

import (
	"breathbathNewsIntel/pkg/cmd"
	"breathbathNewsIntel/pkg/errs"
	"breathbathNewsIntel/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	// env files first, so LOG_LEVEL from them is picked up by logging.Init
	err := godotenv.Overload(".env.default", ".env.secret", ".env.local")

	logging.Init()
	errs.Handle(err, false)

	err = cmd.Execute()
	errs.Handle(err, true)
}
