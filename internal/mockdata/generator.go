// Package mockdata builds the in-memory collections the dashboard renders. Fixed records
// come from the academy's demo data set; filler students and payment outcomes are drawn
// from an injectable random source.
package mockdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
	"sport-academy/internal/util"
)

const (
	// DefaultFillerStudents matches the size of the demo data set (5 fixed + 15 filler).
	DefaultFillerStudents = 15
	// PaymentMonths is how many monthly charges each student gets, ending at the reference month.
	PaymentMonths = 6
	// PaymentDueDay is the day of the month a fee falls due.
	PaymentDueDay = 5
	// paidShare is the probability a recent payment was settled.
	paidShare = 0.6
)

type Generator struct {
	Rand           *rand.Rand
	Reference      time.Time
	FillerStudents int
}

// New returns a generator for the given reference date. A zero seed draws one from the
// clock, so successive runs differ; any other seed makes Generate deterministic.
func New(seed int64, reference time.Time) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Rand:           rand.New(rand.NewSource(seed)),
		Reference:      reference,
		FillerStudents: DefaultFillerStudents,
	}
}

// Generate produces every collection. It is meant to be called once at startup.
func (g *Generator) Generate() models.Dataset {
	catalog := sports()
	students := append(fixedStudents(), g.fillerStudents(catalog)...)

	return models.Dataset{
		Sports:     catalog,
		Modalities: modalities(),
		Students:   students,
		Teachers:   teachers(),
		Payments:   g.payments(students),
		Events:     events(),
		Roles:      roles(),
		Users:      users(),
	}
}

func (g *Generator) fillerStudents(catalog []models.SportModality) []models.Student {
	out := make([]models.Student, 0, g.FillerStudents)

	for i := 0; i < g.FillerStudents; i++ {
		name := fillerNames[i%len(fillerNames)]
		if i >= len(fillerNames) {
			name = fmt.Sprintf("%s %d", name, i/len(fillerNames)+1)
		}
		firstName := strings.Fields(name)[0]
		selected := sportCombos[i%len(sportCombos)]
		id := i + 6

		status := models.StudentActive
		if i%10 == 0 {
			status = models.StudentPending
		}

		var health models.HealthInfo
		if i%3 == 0 {
			health.Allergies = []string{"Amendoim"}
		}
		if i%4 == 0 {
			health.Medications = []string{"Vitamina D"}
		}
		if i%5 == 0 {
			health.Restrictions = []string{"Restrição médica"}
		}
		health.DoctorContact = fmt.Sprintf("Dr. %s - (11) %04d-%04d", firstName, i+3000, i+4000)
		health.HealthPlan = healthPlans[i%len(healthPlans)]

		out = append(out, models.Student{
			ID:          fmt.Sprint(id),
			Name:        name,
			DateOfBirth: time.Date(2012+i%3, time.Month(g.Rand.Intn(12)+1), g.Rand.Intn(28)+1, 0, 0, 0, 0, time.Local),
			CPF:         fmt.Sprintf("%03d.%03d.%03d-%02d", i+100, i+200, i+300, i+10),
			Address: models.Address{
				Street:  fmt.Sprintf("Rua %d", i+1),
				Number:  fmt.Sprint((i + 1) * 100),
				City:    "São Paulo",
				State:   "SP",
				ZipCode: fmt.Sprintf("0%04d-000", (i+1000)%10000),
			},
			Status: status,
			Sports: append([]string(nil), selected...),
			Guardian: models.Guardian{
				Name:       "Responsável " + name,
				CPF:        fmt.Sprintf("%03d.%03d.%03d-%02d", i+400, i+500, i+600, i+20),
				Phone:      fmt.Sprintf("(11) %05d-%04d", i+90000, i+1000),
				Email:      fmt.Sprintf("responsavel%d@email.com", id),
				Profession: professions[i%len(professions)],
			},
			EmergencyContact: models.EmergencyContact{
				Name:         "Emergência " + name,
				Relationship: relationships[i%len(relationships)],
				Phone:        fmt.Sprintf("(11) %05d-%04d", i+80000, i+2000),
				Email:        fmt.Sprintf("emergencia%d@email.com", id),
			},
			Health:         health,
			EnrollmentDate: g.enrollmentDate(),
			MonthlyFee:     filter.TotalFee(selected, catalog),
		})
	}
	return out
}

// enrollmentDate falls between January of the reference year and the reference date.
func (g *Generator) enrollmentDate() time.Time {
	ref := g.Reference
	month := time.Month(g.Rand.Intn(int(ref.Month())) + 1)
	lastDay := 28
	if month == ref.Month() && ref.Day() < lastDay {
		lastDay = ref.Day()
	}
	return time.Date(ref.Year(), month, g.Rand.Intn(lastDay)+1, 0, 0, 0, 0, time.Local)
}

// payments emits one charge per student per month. Only the two most recent months can
// be unsettled; an unsettled charge is overdue once its due date is behind the reference
// date and pending otherwise, and no paid date lies after the reference date.
func (g *Generator) payments(students []models.Student) []models.Payment {
	ref := g.Reference
	current := util.StartOfMonth(ref)

	var out []models.Payment
	for _, st := range students {
		for idx := 0; idx < PaymentMonths; idx++ {
			month := current.AddDate(0, -idx, 0)
			key := month.Format(util.MonthLayout)
			due := time.Date(month.Year(), month.Month(), PaymentDueDay, 0, 0, 0, 0, time.Local)

			sport := ""
			if len(st.Sports) > 0 {
				sport = st.Sports[0]
			}
			p := models.Payment{
				ID:          st.ID + "-" + key,
				StudentID:   st.ID,
				StudentName: st.Name,
				Sport:       sport,
				Amount:      st.MonthlyFee,
				Month:       key,
				DueDate:     due,
			}

			settled := idx >= 2 || g.Rand.Float64() < paidShare
			if settled {
				lastDay := PaymentDueDay
				if idx == 0 && ref.Day() < lastDay {
					lastDay = ref.Day()
				}
				paid := time.Date(month.Year(), month.Month(), g.Rand.Intn(lastDay)+1, 0, 0, 0, 0, time.Local)
				p.PaidDate = &paid
				p.Status = models.PaymentPaid
			} else if due.Before(ref) {
				p.Status = models.PaymentOverdue
			} else {
				p.Status = models.PaymentPending
			}
			out = append(out, p)
		}
	}
	return out
}

// CheckConsistency reports every record that breaks a generation invariant: a student
// fee that differs from the sum of its sports, or a payment whose status disagrees with
// its dates relative to reference.
func CheckConsistency(data models.Dataset, reference time.Time) []string {
	var problems []string

	for _, st := range data.Students {
		if want := filter.TotalFee(st.Sports, data.Sports); want != st.MonthlyFee {
			problems = append(problems, fmt.Sprintf("student %s (%s): monthly fee %.2f, sports add up to %.2f",
				st.ID, st.Name, st.MonthlyFee, want))
		}
	}

	for _, p := range data.Payments {
		switch p.Status {
		case models.PaymentPaid:
			if p.PaidDate == nil {
				problems = append(problems, fmt.Sprintf("payment %s: paid without a paid date", p.ID))
			} else if p.PaidDate.After(reference) {
				problems = append(problems, fmt.Sprintf("payment %s: paid date %s after reference date",
					p.ID, p.PaidDate.Format(util.DateLayout)))
			}
		case models.PaymentOverdue:
			if p.PaidDate != nil || !p.DueDate.Before(reference) {
				problems = append(problems, fmt.Sprintf("payment %s: overdue but due %s", p.ID, p.DueDate.Format(util.DateLayout)))
			}
		case models.PaymentPending:
			if p.PaidDate != nil || p.DueDate.Before(reference) {
				problems = append(problems, fmt.Sprintf("payment %s: pending but due %s", p.ID, p.DueDate.Format(util.DateLayout)))
			}
		default:
			problems = append(problems, fmt.Sprintf("payment %s: unknown status %q", p.ID, p.Status))
		}
	}
	return problems
}
