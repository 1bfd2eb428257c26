package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/roster"
)

func (cli *commandLine) students(args []string) error {
	fs := cli.newFlagSet("students")
	search := fs.String("search", "", "Case-insensitive match on name, email or admission number.")
	class := fs.String("class", "", "Only students of this class.")
	status := fs.String("status", "", "Only students with this status: active, inactive or suspended.")
	ordering := fs.String("ordering", "name", "Comma separated fields among name, class, performance, attendance; prefix with - to reverse.")
	if err := cli.parse(fs, args); err != nil {
		return err
	}

	students, err := cli.rosterSvc.Query(
		roster.QueryFilter{Search: *search, Class: *class, Status: *status},
		core.ParseOrdering(*ordering)...,
	)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Fprintln(cli.out, "No students found. Try adjusting your search or filters.")
		return nil
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ADMISSION\tNAME\tCLASS\tPERFORMANCE\tATTENDANCE\tSTATUS")
	for _, s := range students {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%d%%\t%s\n",
			s.AdmissionNumber, s.Name, s.Class, s.Performance, s.Attendance, s.Status)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	counts, err := cli.rosterSvc.CountByStatus()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "\n%d shown - %d active, %d inactive, %d suspended in school\n",
		len(students), counts[roster.StatusActive], counts[roster.StatusInactive], counts[roster.StatusSuspended])
	return nil
}
