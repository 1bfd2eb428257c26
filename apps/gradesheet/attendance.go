package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/attendance"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/roster"
)

const dateLayout = "2006-01-02"

func (cli *commandLine) attendance(args []string) error {
	fs := cli.newFlagSet("attendance")
	class := fs.String("class", "", "Class code, e.g. 10A.")
	date := fs.String("date", "", "Day to mark, as YYYY-MM-DD (defaults to today).")
	if err := cli.parse(fs, args); err != nil {
		return err
	}

	day := nowFunc()
	if *date != "" {
		var err error
		if day, err = time.ParseInLocation(dateLayout, *date, time.Local); err != nil {
			err = core.NewValidationError(err, core.FieldError{Field: "date", Error: "must be formatted as YYYY-MM-DD"})
			cli.report(err)
			return err
		}
	}

	code := strings.ToUpper(core.CleanString(*class))
	students, err := cli.rosterSvc.Class(code)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		err = core.NewValidationError(grade.ErrEmptyClass, core.FieldError{Field: "class", Error: grade.ErrEmptyClass.Error()})
		cli.report(err)
		return err
	}

	sh := attendance.NewSheet(code, day, students)
	fmt.Fprintf(cli.out, "%s - %s, %d students\n", sh.Class, sh.Date.Format("Monday 02 January 2006"), len(students))
	if cli.interactive() {
		fmt.Fprintln(cli.out, "Mark one student per line as: <student id|admission number|name> present|absent|late")
	}

	scanner := bufio.NewScanner(cli.in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			fmt.Fprintf(cli.out, "%s: expected a student and a status\n", cli.clr.Yellow("ignored"))
			continue
		}
		cli.mark(sh, strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1])
	}
	if err = scanner.Err(); err != nil {
		return errors.Wrap(err, "reading attendance")
	}

	cli.printAttendance(sh)
	return nil
}

func (cli *commandLine) mark(sh *attendance.Sheet, key, raw string) {
	status, ok := attendance.ParseStatus(raw)
	if !ok {
		fmt.Fprintf(cli.out, "%s: unknown status %q\n", cli.clr.Yellow("ignored"), raw)
		return
	}
	s, ok := lookup(sh.Students(), key)
	if !ok {
		msg := fmt.Sprintf("%s: no student %q in %s", cli.clr.Yellow("ignored"), key, sh.Class)
		if closest, found := roster.Closest(key, sh.Students()); found {
			msg += fmt.Sprintf(", did you mean %q?", closest.Name)
		}
		fmt.Fprintln(cli.out, msg)
		return
	}
	sh.Mark(s.ID, status)
}

func lookup(students []roster.Student, key string) (roster.Student, bool) {
	if key == "" {
		return roster.Student{}, false
	}
	for _, s := range students {
		if s.ID == key || (s.AdmissionNumber != "" && strings.EqualFold(s.AdmissionNumber, key)) || strings.EqualFold(s.Name, key) {
			return s, true
		}
	}
	return roster.Student{}, false
}
