package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/gradebook/core/attendance"
	"github.com/trezcool/gradebook/core/grade"
)

func (cli *commandLine) band(b grade.Band, text string) string {
	switch b {
	case grade.BandExcellent:
		return cli.clr.Green(text)
	case grade.BandGood:
		return cli.clr.Blue(text)
	case grade.BandAverage:
		return cli.clr.Yellow(text)
	default:
		return cli.clr.Red(text)
	}
}

func (cli *commandLine) printRows(sh *grade.Sheet) {
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ADMISSION\tNAME\tSCORE\tPERCENTAGE")
	for _, row := range sh.Rows() {
		score, pct := cli.clr.Grey("-"), cli.clr.Grey("N/A")
		if row.Score != nil {
			score = fmt.Sprintf("%d/%d", *row.Score, sh.Store().OutOf())
			pct = cli.band(row.Band, fmt.Sprintf("%d%%", *row.Percentage))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Student.AdmissionNumber, row.Student.Name, score, pct)
	}
	_ = tw.Flush()
}

func (cli *commandLine) printSummary(sum grade.Summary) {
	avgPct := "N/A"
	if sum.AveragePercentage != nil {
		avgPct = fmt.Sprintf("%d%%", *sum.AveragePercentage)
	}
	fmt.Fprintf(cli.out, "\nClass average: %.1f/%d (%s)\n", sum.Average, sum.OutOf, avgPct)
	fmt.Fprintf(cli.out, "Completion: %d%% (%d of %d graded)\n", sum.Completion, sum.Graded, sum.Total)
	fmt.Fprintln(cli.out, "Distribution:")
	for _, b := range grade.Bands {
		fmt.Fprintf(cli.out, "  %-7s %s\n", b, cli.band(b, fmt.Sprint(sum.Distribution.Count(b))))
	}
}

func (cli *commandLine) printAttendance(sh *attendance.Sheet) {
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ADMISSION\tNAME\tSTATUS")
	for _, s := range sh.Students() {
		status := cli.clr.Grey("unmarked")
		if st, ok := sh.StatusOf(s.ID); ok {
			switch st {
			case attendance.StatusPresent:
				status = cli.clr.Green(string(st))
			case attendance.StatusLate:
				status = cli.clr.Yellow(string(st))
			default:
				status = cli.clr.Red(string(st))
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.AdmissionNumber, s.Name, status)
	}
	_ = tw.Flush()

	sum := sh.Summary()
	fmt.Fprintf(cli.out, "\n%d present, %d absent, %d late, %d unmarked of %d\n",
		sum.Present, sum.Absent, sum.Late, sum.Unmarked, sum.Total)
}
