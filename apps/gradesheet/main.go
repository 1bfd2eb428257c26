package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/message"
	"github.com/trezcool/gradebook/core/roster"
	emailsvc "github.com/trezcool/gradebook/services/email"
	logsvc "github.com/trezcool/gradebook/services/logger"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "GRADES : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// validation
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	roster.InitValidators(validate, translator)
	grade.InitValidators(validate, translator)

	// set up DB
	db, err := inmemdb.Open()
	errAndDie(logger, err)
	rosterSvc := roster.NewService(inmemdb.NewStudentRepository(db), validate)
	errAndDie(logger, inmemdb.Seed(rosterSvc))

	// start CLI
	cli := commandLine{
		in:         os.Stdin,
		out:        os.Stdout,
		conf:       conf,
		translator: translator,
		rosterSvc:  rosterSvc,
		gradeSvc:   grade.NewService(rosterSvc, validate, logger, conf),
		msgSvc:     message.NewService(rosterSvc, emailsvc.NewConsoleService(conf, logger), validate),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp && !core.IsValidationError(err) {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
