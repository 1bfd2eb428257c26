/*
	Project: Masomo Gradebook - teacher side of https://masomo.cd
	Target: École secondaires (one teacher, one machine for now)
*/
package gradebook

/*
TODO: persist saved sheets (grade.Receipt only lives in the logs for now)
TODO: gradesheet: export a sheet as CSV, same "Student ID,Score" layout ImportCSV reads
TODO: attendance: keep marked sheets so PreviousDay/NextDay can show what was recorded

Grades:
	- out of range scores are rejected, never clamped (only SetOutOf clamps)
	- bands use the unrounded percentage: 89.6% is still 70-89
*/
