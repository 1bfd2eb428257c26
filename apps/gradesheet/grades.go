package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/roster"
)

func (cli *commandLine) printGradesHelp() {
	fmt.Fprintln(cli.out, "Enter one grade per line as: <student id|admission number|name> <score>")
	fmt.Fprintln(cli.out, "Other commands: outof N, clear, rows, summary, save, quit")
}

func (cli *commandLine) grades(args []string) error {
	fs := cli.newFlagSet("grades")
	class := fs.String("class", "", "Class code, e.g. 10A.")
	subject := fs.String("subject", "", "Subject id: math, sci, eng, fre, hist or geo.")
	assignment := fs.String("assignment", "Quiz 1", "Assignment name.")
	outOf := fs.Int("outof", 0, "Maximum score (defaults to the configured one).")
	importPath := fs.String("import", "", "CSV file of \"Student ID,Score\" rows to load before entry.")
	save := fs.Bool("save", false, "Save the grades when input ends.")
	notify := fs.Bool("notify", false, "Mail each graded student their score after saving.")
	if err := cli.parse(fs, args); err != nil {
		return err
	}

	sh, err := cli.gradeSvc.Open(grade.NewSheet{
		Assignment: *assignment,
		Class:      *class,
		Subject:    *subject,
		OutOf:      *outOf,
	})
	if err != nil {
		cli.report(err)
		return err
	}
	fmt.Fprintf(cli.out, "%s - %s - %s (out of %d), %d students\n",
		sh.Class, sh.Subject.Name, sh.Assignment, sh.Store().OutOf(), len(sh.Students()))

	if *importPath != "" {
		if err = cli.importGrades(sh, *importPath); err != nil {
			return err
		}
	}

	interactive := cli.interactive()
	if interactive {
		cli.printGradesHelp()
	}
	if err = cli.enterGrades(sh, interactive, *save); err != nil {
		return err
	}

	cli.printRows(sh)
	cli.printSummary(sh.Summary())

	if !*save {
		return nil
	}
	return cli.saveGrades(sh, *notify)
}

func (cli *commandLine) importGrades(sh *grade.Sheet, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening grades file")
	}
	defer f.Close()

	res, err := grade.ImportCSV(sh, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "imported %d grades from %s\n", res.Imported, path)
	for _, skip := range res.Skipped {
		fmt.Fprintf(cli.out, "  %s line %d (%s): %s\n", cli.clr.Yellow("skipped"), skip.Line, skip.Key, skip.Reason)
	}
	return nil
}

// enterGrades reads grade lines until EOF or quit. A save command ends input early when saving is enabled.
func (cli *commandLine) enterGrades(sh *grade.Sheet, interactive, save bool) error {
	scanner := bufio.NewScanner(cli.in)
	prompt := func() {
		if interactive {
			fmt.Fprint(cli.out, "> ")
		}
	}

	for prompt(); scanner.Scan(); prompt() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		case "help", "?":
			cli.printGradesHelp()
			continue
		case "clear":
			sh.ClearAll()
			fmt.Fprintln(cli.out, "all grades cleared")
			continue
		case "rows", "list":
			cli.printRows(sh)
			continue
		case "summary":
			cli.printSummary(sh.Summary())
			continue
		case "save":
			if save {
				return nil
			}
			fmt.Fprintln(cli.out, "run with -save to save grades")
			continue
		case "outof":
			if len(fields) == 2 {
				n, err := strconv.Atoi(fields[1])
				if err == nil && sh.SetOutOf(n) {
					fmt.Fprintf(cli.out, "grades are now out of %d\n", n)
					continue
				}
			}
			fmt.Fprintf(cli.out, "%s: maximum must be a positive whole number\n", cli.clr.Yellow("ignored"))
			continue
		}

		if len(fields) < 2 {
			fmt.Fprintf(cli.out, "%s: expected a student and a score\n", cli.clr.Yellow("ignored"))
			continue
		}
		cli.enterGrade(sh, strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1])
	}
	return errors.Wrap(scanner.Err(), "reading grades")
}

func (cli *commandLine) enterGrade(sh *grade.Sheet, key, raw string) {
	s, ok := sh.Lookup(key)
	if !ok {
		msg := fmt.Sprintf("%s: no student %q in %s", cli.clr.Yellow("ignored"), key, sh.Class)
		if closest, found := roster.Closest(key, sh.Students()); found {
			msg += fmt.Sprintf(", did you mean %q?", closest.Name)
		}
		fmt.Fprintln(cli.out, msg)
		return
	}
	if !sh.SetScore(s.ID, raw) {
		fmt.Fprintf(cli.out, "%s: score for %s must be a whole number from 0 to %d\n",
			cli.clr.Yellow("ignored"), s.Name, sh.Store().OutOf())
		return
	}
	pct, _ := grade.PercentageFor(sh.Store(), s.ID)
	score, _ := sh.Store().Score(s.ID)
	fmt.Fprintf(cli.out, "%s: %d/%d (%d%%)\n", s.Name, score, sh.Store().OutOf(), pct)
}

func (cli *commandLine) saveGrades(sh *grade.Sheet, notify bool) error {
	fmt.Fprintln(cli.out, "saving...")
	rcpt, err := cli.gradeSvc.Save(context.Background(), sh)
	if err != nil {
		cli.report(err)
		return err
	}
	fmt.Fprintln(cli.out, cli.clr.Green(rcpt.Message()))

	if !notify {
		return nil
	}
	sent, err := cli.msgSvc.SendGradeReports(sh)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d grade reports sent\n", sent)
	return nil
}
