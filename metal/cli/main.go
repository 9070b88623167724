package main

import (
	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/metal/cli/accounts"
	"github.com/ehihameneromosele/fullblog2c/metal/cli/panel"
	"github.com/ehihameneromosele/fullblog2c/metal/env"
	"github.com/ehihameneromosele/fullblog2c/metal/kernel"
	"github.com/ehihameneromosele/fullblog2c/pkg/cli"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

var environment *env.Environment
var dbConn *database.Connection

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic(err)
	}

	environment = secrets
	dbConn = kernel.MakeDbConnection(environment)
}

func main() {
	cli.ClearScreen()

	defer dbConn.Close()

	menu := panel.MakeMenu()

	for {
		if err := menu.CaptureInput(); err != nil {
			cli.Errorln(err.Error())

			continue
		}

		choice := menu.GetChoice()

		if choice == 0 {
			cli.Successln("Goodbye!")

			return
		}

		done, err := dispatch(choice, menu)

		if err != nil {
			cli.Errorln(err.Error())

			continue
		}

		if done {
			return
		}

		cli.Blueln("Press Enter to continue...")
		menu.PrintLine()
	}
}

// dispatch runs the chosen panel action. It reports done=true when the action
// completed and the panel should exit.
func dispatch(choice int, menu panel.Menu) (bool, error) {
	handler, err := accounts.MakeHandler(dbConn, environment)
	if err != nil {
		return false, err
	}

	switch choice {
	case 1:
		input, err := menu.CaptureNewAdmin()
		if err != nil {
			return false, err
		}

		return true, handler.CreateAdmin(*input)
	case 2:
		username, err := menu.CaptureUsername()
		if err != nil {
			return false, err
		}

		return true, handler.PromoteUser(username)
	case 3:
		username, err := menu.CaptureUsername()
		if err != nil {
			return false, err
		}

		return true, handler.ShowAccount(username)
	default:
		cli.Errorln("Unknown option. Try again.")

		return false, nil
	}
}
