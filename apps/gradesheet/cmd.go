package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/gommon/color"
	"golang.org/x/term"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/message"
	"github.com/trezcool/gradebook/core/roster"
)

var (
	isTerminalFunc = term.IsTerminal // mockable
	nowFunc        = time.Now        // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	in  io.Reader
	out io.Writer

	conf       *core.Config
	translator ut.Translator
	rosterSvc  *roster.Service
	gradeSvc   *grade.Service
	msgSvc     *message.Service

	clr *color.Color
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  students   [-search TEXT] [-class CLASS] [-status STATUS] [-ordering FIELDS] - list the roster")
	fmt.Fprintln(cli.out, "  grades     -class CLASS -subject SUBJECT [-assignment NAME] [-outof N] [-import FILE] [-save] [-notify] - enter grades")
	fmt.Fprintln(cli.out, "  attendance -class CLASS [-date YYYY-MM-DD] - mark attendance")
	fmt.Fprintln(cli.out, "  message    -class CLASS -subject SUBJECT -body TEXT - message a class")
}

// interactive reports whether both ends of the session are a terminal.
func (cli *commandLine) interactive() bool {
	in, ok := cli.in.(*os.File)
	if !ok {
		return false
	}
	out, ok := cli.out.(*os.File)
	if !ok {
		return false
	}
	return isTerminalFunc(int(in.Fd())) && isTerminalFunc(int(out.Fd()))
}

func (cli *commandLine) setUpColor() {
	cli.clr = color.New()
	cli.clr.SetOutput(cli.out)
	if !cli.conf.Color || !cli.interactive() {
		cli.clr.Disable()
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if cli.clr == nil {
		cli.setUpColor()
	}
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "students":
		return cli.students(args[2:])
	case "grades":
		return cli.grades(args[2:])
	case "attendance":
		return cli.attendance(args[2:])
	case "message":
		return cli.message(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// report prints validation failures field by field. Other errors are left to the caller.
func (cli *commandLine) report(err error) {
	fldErrs := core.FieldErrors(err, cli.translator)
	fields := make([]string, 0, len(fldErrs))
	for f := range fldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(cli.out, "%s: %s\n", cli.clr.Red(f), fldErrs[f])
	}
}
