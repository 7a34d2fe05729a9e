package mockdata

import (
	"sport-academy/internal/models"
	"sport-academy/internal/util"
)

func fixedStudents() []models.Student {
	return []models.Student{
		{
			ID: "1", Name: "Lucas Silva Santos", DateOfBirth: util.MustDate("2012-03-15"), CPF: "123.456.789-01",
			Address: models.Address{Street: "Rua das Flores", Number: "123", City: "São Paulo", State: "SP", ZipCode: "01234-567"},
			Status:  models.StudentActive, Sports: []string{"Futebol"},
			Guardian: models.Guardian{Name: "Maria Silva Santos", CPF: "987.654.321-00", Phone: "(11) 99999-1111",
				Email: "maria.santos@email.com", Profession: "Professora"},
			EmergencyContact: models.EmergencyContact{Name: "João Silva", Relationship: "Pai", Phone: "(11) 99999-2222",
				Email: "joao.silva@email.com"},
			Health: models.HealthInfo{Allergies: []string{"Amendoim"}, DoctorContact: "Dr. Pedro - (11) 3333-4444",
				HealthPlan: "Unimed"},
			EnrollmentDate: util.MustDate("2024-01-15"), MonthlyFee: 150,
		},
		{
			ID: "2", Name: "Ana Carolina Lima", DateOfBirth: util.MustDate("2013-07-22"), CPF: "234.567.890-12",
			Address: models.Address{Street: "Av. Paulista", Number: "456", City: "São Paulo", State: "SP", ZipCode: "01310-100"},
			Status:  models.StudentActive, Sports: []string{"Natação", "Vôlei"},
			Guardian: models.Guardian{Name: "Carlos Lima", CPF: "876.543.210-99", Phone: "(11) 88888-3333",
				Email: "carlos.lima@email.com", Profession: "Engenheiro"},
			EmergencyContact: models.EmergencyContact{Name: "Rita Lima", Relationship: "Mãe", Phone: "(11) 88888-4444",
				Email: "rita.lima@email.com"},
			Health: models.HealthInfo{Medications: []string{"Vitamina D"}, DoctorContact: "Dra. Ana - (11) 5555-6666",
				HealthPlan: "Bradesco Saúde"},
			EnrollmentDate: util.MustDate("2024-02-01"), MonthlyFee: 360,
		},
		{
			ID: "3", Name: "Pedro Henrique Costa", DateOfBirth: util.MustDate("2011-11-08"), CPF: "345.678.901-23",
			Address: models.Address{Street: "Rua Augusta", Number: "789", City: "São Paulo", State: "SP", ZipCode: "01305-000"},
			Status:  models.StudentActive, Sports: []string{"Basquete"},
			Guardian: models.Guardian{Name: "Fernanda Costa", CPF: "765.432.109-88", Phone: "(11) 77777-5555",
				Email: "fernanda.costa@email.com", Profession: "Médica"},
			EmergencyContact: models.EmergencyContact{Name: "Roberto Costa", Relationship: "Pai", Phone: "(11) 77777-6666",
				Email: "roberto.costa@email.com"},
			Health: models.HealthInfo{Allergies: []string{"Lactose"}, DoctorContact: "Dr. Carlos - (11) 7777-8888",
				HealthPlan: "SulAmérica"},
			EnrollmentDate: util.MustDate("2024-01-20"), MonthlyFee: 180,
		},
		{
			ID: "4", Name: "Gabriela Oliveira", DateOfBirth: util.MustDate("2014-05-12"), CPF: "456.789.012-34",
			Address: models.Address{Street: "Rua Oscar Freire", Number: "321", City: "São Paulo", State: "SP", ZipCode: "01426-001"},
			Status:  models.StudentActive, Sports: []string{"Judô"},
			Guardian: models.Guardian{Name: "Juliana Oliveira", CPF: "654.321.098-77", Phone: "(11) 66666-7777",
				Email: "juliana.oliveira@email.com", Profession: "Advogada"},
			EmergencyContact: models.EmergencyContact{Name: "Marcos Oliveira", Relationship: "Pai", Phone: "(11) 66666-8888",
				Email: "marcos.oliveira@email.com"},
			Health: models.HealthInfo{Restrictions: []string{"Problema no joelho direito"},
				DoctorContact: "Dr. Luiz - (11) 9999-0000", HealthPlan: "Amil"},
			EnrollmentDate: util.MustDate("2024-03-01"), MonthlyFee: 140,
		},
		{
			ID: "5", Name: "Rafael Mendes", DateOfBirth: util.MustDate("2012-09-30"), CPF: "567.890.123-45",
			Address: models.Address{Street: "Rua Consolação", Number: "654", City: "São Paulo", State: "SP", ZipCode: "01302-907"},
			Status:  models.StudentActive, Sports: []string{"Futebol", "Futsal"},
			Guardian: models.Guardian{Name: "Patricia Mendes", CPF: "543.210.987-66", Phone: "(11) 55555-9999",
				Email: "patricia.mendes@email.com", Profession: "Dentista"},
			EmergencyContact: models.EmergencyContact{Name: "André Mendes", Relationship: "Pai", Phone: "(11) 55555-0000",
				Email: "andre.mendes@email.com"},
			Health: models.HealthInfo{Allergies: []string{"Poeira"}, Medications: []string{"Antialérgico"},
				DoctorContact: "Dra. Carla - (11) 1111-2222", HealthPlan: "Porto Seguro"},
			EnrollmentDate: util.MustDate("2024-01-10"), MonthlyFee: 270,
		},
	}
}

var fillerNames = []string{
	"Isabella Santos", "Matheus Rodrigues", "Sophia Ferreira", "João Pedro Silva",
	"Manuela Costa", "Enzo Gabriel Lima", "Valentina Oliveira", "Arthur Souza",
	"Helena Almeida", "Miguel Barbosa", "Alice Pereira", "Davi Martins",
	"Laura Ribeiro", "Bernardo Carvalho", "Beatriz Araújo",
}

var sportCombos = [][]string{
	{"Futebol"}, {"Basquete"}, {"Vôlei"}, {"Natação"}, {"Judô"}, {"Futsal"},
	{"Futebol", "Futsal"}, {"Natação", "Judô"}, {"Basquete", "Vôlei"},
}

var (
	professions   = []string{"Professor", "Médico", "Engenheiro", "Advogado", "Comerciante"}
	relationships = []string{"Pai", "Mãe", "Avô", "Avó", "Tio"}
	healthPlans   = []string{"Unimed", "Bradesco", "SulAmérica", "Amil", "Porto Seguro"}
)
