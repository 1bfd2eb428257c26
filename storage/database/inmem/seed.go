package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/roster"
)

// SeedStudents is the mock school roster the gradebook starts with.
var SeedStudents = []roster.NewStudent{
	{Name: "Amani Kabila", Email: "amani.kabila@student.masomo.cd", Class: "10A", AdmissionNumber: "MSM2023001", Performance: 92, Attendance: 97},
	{Name: "Bisimwa Lukusa", Email: "bisimwa.lukusa@student.masomo.cd", Class: "10A", AdmissionNumber: "MSM2023002", Performance: 78, Attendance: 88},
	{Name: "Chance Mbuyi", Email: "chance.mbuyi@student.masomo.cd", Class: "10A", AdmissionNumber: "MSM2023003", Performance: 64, Attendance: 91},
	{Name: "Divine Ngoy", Email: "divine.ngoy@student.masomo.cd", Class: "10A", AdmissionNumber: "MSM2023004", Performance: 85, Attendance: 79},
	{Name: "Esther Ilunga", Class: "10A", AdmissionNumber: "MSM2023005", Performance: 47, Attendance: 70},
	{Name: "Fiston Kalala", Email: "fiston.kalala@student.masomo.cd", Class: "10B", AdmissionNumber: "MSM2023006", Performance: 71, Attendance: 93},
	{Name: "Grace Mwamba", Email: "grace.mwamba@student.masomo.cd", Class: "10B", AdmissionNumber: "MSM2023007", Performance: 88, Attendance: 95},
	{Name: "Héritier Tshibangu", Email: "heritier.tshibangu@student.masomo.cd", Class: "10B", AdmissionNumber: "MSM2023008", Performance: 56, Attendance: 82},
	{Name: "Israël Mukendi", Email: "israel.mukendi@student.masomo.cd", Class: "10B", AdmissionNumber: "MSM2023009", Performance: 95, Attendance: 99},
	{Name: "Joëlle Kasongo", Email: "joelle.kasongo@student.masomo.cd", Class: "SS1A", AdmissionNumber: "MSM2023010", Performance: 81, Attendance: 90},
	{Name: "Kevin Banza", Email: "kevin.banza@student.masomo.cd", Class: "SS1A", AdmissionNumber: "MSM2023011", Performance: 60, Attendance: 65, Status: roster.StatusInactive},
	{Name: "Lydia Ntumba", Email: "lydia.ntumba@student.masomo.cd", Class: "SS1A", AdmissionNumber: "MSM2023012", Performance: 73, Attendance: 84, Status: roster.StatusSuspended},
}

// Seed adds SeedStudents through the roster service so they are validated like any other input.
func Seed(svc *roster.Service) error {
	for _, ns := range SeedStudents {
		if _, err := svc.Create(ns); err != nil {
			return errors.Wrapf(err, "seeding %s", ns.Name)
		}
	}
	return nil
}
