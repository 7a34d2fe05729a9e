package mockdata

import (
	"sport-academy/internal/models"
	"sport-academy/internal/util"
)

func sports() []models.SportModality {
	return []models.SportModality{
		{ID: "1", Name: "Futebol", MonthlyFee: 150, AgeRange: models.AgeRange{Min: 6, Max: 15},
			Schedule: models.Schedule{Days: []string{"Segunda", "Quarta", "Sexta"}, Time: "16:00-17:30"}, Active: true},
		{ID: "2", Name: "Futsal", MonthlyFee: 120, AgeRange: models.AgeRange{Min: 6, Max: 15},
			Schedule: models.Schedule{Days: []string{"Terça", "Quinta"}, Time: "17:00-18:30"}, Active: true},
		{ID: "3", Name: "Basquete", MonthlyFee: 180, AgeRange: models.AgeRange{Min: 8, Max: 15},
			Schedule: models.Schedule{Days: []string{"Segunda", "Quarta"}, Time: "18:00-19:30"}, Active: true},
		{ID: "4", Name: "Vôlei", MonthlyFee: 160, AgeRange: models.AgeRange{Min: 10, Max: 15},
			Schedule: models.Schedule{Days: []string{"Terça", "Quinta"}, Time: "19:00-20:30"}, Active: true},
		{ID: "5", Name: "Natação", MonthlyFee: 200, AgeRange: models.AgeRange{Min: 6, Max: 15},
			Schedule: models.Schedule{Days: []string{"Segunda", "Quarta", "Sexta"}, Time: "15:00-16:00"}, Active: true},
		{ID: "6", Name: "Judô", MonthlyFee: 140, AgeRange: models.AgeRange{Min: 6, Max: 15},
			Schedule: models.Schedule{Days: []string{"Terça", "Quinta"}, Time: "16:00-17:00"}, Active: true},
	}
}

func modalities() []models.SportModality {
	descriptions := map[string]struct {
		description string
		capacity    int
		equipment   []string
	}{
		"Futebol":  {"Modalidade esportiva mais popular do Brasil", 20, []string{"Bola", "Cones", "Coletes", "Traves"}},
		"Futsal":   {"Futebol adaptado para quadras cobertas", 16, []string{"Bola de Futsal", "Cones", "Coletes"}},
		"Basquete": {"Esporte coletivo com cestas", 15, []string{"Bola de Basquete", "Cones", "Cestas"}},
		"Vôlei":    {"Esporte de rede com saque, passe e ataque", 12, []string{"Bola de Vôlei", "Rede", "Antenas"}},
		"Natação":  {"Esporte aquático completo", 8, []string{"Pranchas", "Pull Buoy", "Noodles", "Óculos"}},
		"Judô":     {"Arte marcial japonesa", 15, []string{"Tatames", "Faixas", "Judogis"}},
	}

	var out []models.SportModality
	for _, s := range sports() {
		d := descriptions[s.Name]
		s.Description = d.description
		s.Capacity = d.capacity
		s.Equipment = d.equipment
		out = append(out, s)
	}

	return append(out,
		models.SportModality{ID: "7", Name: "Balé", Description: "Dança clássica e expressão corporal",
			AgeRange: models.AgeRange{Min: 4, Max: 15}, MonthlyFee: 130, Capacity: 12,
			Equipment: []string{"Barras", "Espelhos", "Som"},
			Schedule:  models.Schedule{Days: []string{"Sábado"}, Time: "09:00-10:30"}, Active: true},
		models.SportModality{ID: "8", Name: "Ginástica", Description: "Exercícios de flexibilidade e coordenação",
			AgeRange: models.AgeRange{Min: 5, Max: 15}, MonthlyFee: 170, Capacity: 10,
			Equipment: []string{"Colchões", "Trampolins", "Argolas"},
			Schedule:  models.Schedule{Days: []string{"Sábado"}, Time: "10:30-12:00"}, Active: true},
	)
}

func roles() []models.Role {
	return []models.Role{
		{ID: "1", Name: "Administrador", Description: "Acesso completo ao sistema",
			Permissions: []string{models.PermissionAll}},
		{ID: "2", Name: "Professor", Description: "Acesso limitado para professores",
			Permissions: []string{"students:read", "calendar:read", "calendar:write"}},
		{ID: "3", Name: "Recepcionista", Description: "Acesso para recepção e atendimento",
			Permissions: []string{"students:read", "students:write", "enrollment:write"}},
		{ID: "4", Name: "Financeiro", Description: "Acesso ao módulo financeiro",
			Permissions: []string{"financial:read", "financial:write", "students:read"}},
	}
}

func users() []models.User {
	return []models.User{
		{ID: "1", FullName: "Administrador do Sistema", Username: "admin", Password: "admin",
			Role: "Administrador", Active: true, CreatedAt: util.MustDate("2024-01-01")},
		{ID: "2", FullName: "Carlos Silva", Username: "carlos.silva", Password: "123456",
			Role: "Professor", Active: true, CreatedAt: util.MustDate("2024-02-15")},
		{ID: "3", FullName: "Maria Santos", Username: "maria.santos", Password: "123456",
			Role: "Recepcionista", Active: true, CreatedAt: util.MustDate("2024-03-01")},
	}
}

func teachers() []models.Teacher {
	return []models.Teacher{
		{
			ID: "1", FullName: "Carlos Eduardo Silva", Nickname: "Professor Carlos",
			Identity: "12.345.678-9", CPF: "123.456.789-00",
			Education: "Educação Física - UNIFESP", Sports: []string{"Futebol", "Futsal"},
			Age: 32, Gender: "masculino", Phone: "(11) 99999-1111", Email: "carlos.silva@sportacademy.com",
			Address:  models.Address{Street: "Rua dos Esportes", Number: "100", City: "São Paulo", State: "SP", ZipCode: "01234-567"},
			HireDate: util.MustDate("2024-01-15"), Salary: 4500, Active: true,
		},
		{
			ID: "2", FullName: "Ana Paula Rodrigues", Nickname: "Professora Ana",
			Identity: "98.765.432-1", CPF: "987.654.321-00",
			Education: "Educação Física - USP, Especialização em Natação", Sports: []string{"Natação"},
			Age: 28, Gender: "feminino", Phone: "(11) 88888-2222", Email: "ana.rodrigues@sportacademy.com",
			Address:  models.Address{Street: "Av. Aquática", Number: "250", City: "São Paulo", State: "SP", ZipCode: "01234-890"},
			HireDate: util.MustDate("2024-02-01"), Salary: 4200, Active: true,
		},
		{
			ID: "3", FullName: "Roberto Oliveira Santos", Nickname: "Mestre Roberto",
			Identity: "11.222.333-4", CPF: "111.222.333-44",
			Education: "Educação Física - UNICAMP, Faixa Preta 3º Dan Judô", Sports: []string{"Judô"},
			Age: 45, Gender: "masculino", Phone: "(11) 77777-3333", Email: "roberto.santos@sportacademy.com",
			Address:  models.Address{Street: "Rua das Artes Marciais", Number: "75", City: "São Paulo", State: "SP", ZipCode: "01234-123"},
			HireDate: util.MustDate("2023-08-10"), Salary: 5000, Active: true,
		},
	}
}

func events() []models.Event {
	return []models.Event{
		{ID: "1", Title: "Treino de Futebol - Categoria Sub-12", Type: models.EventTraining, Sport: "Futebol",
			Date: util.MustDate("2024-09-06"), StartTime: "16:00", EndTime: "17:30",
			Description: "Treino técnico focado em passes e finalizações"},
		{ID: "2", Title: "Jogo Amistoso - Basquete", Type: models.EventGame, Sport: "Basquete",
			Date: util.MustDate("2024-09-07"), StartTime: "14:00", EndTime: "16:00",
			Description: "Amistoso contra Academia Esportiva Central"},
		{ID: "3", Title: "Avaliação Física - Natação", Type: models.EventEvaluation, Sport: "Natação",
			Date: util.MustDate("2024-09-08"), StartTime: "15:00", EndTime: "17:00",
			Description: "Avaliação trimestral de desempenho"},
		{ID: "4", Title: "Reunião de Pais - Judô", Type: models.EventMeeting, Sport: "Judô",
			Date: util.MustDate("2024-09-10"), StartTime: "19:00", EndTime: "20:30",
			Description: "Apresentação dos resultados e próximos torneios"},
		{ID: "5", Title: "Torneio Interno - Futsal", Type: models.EventSpecial, Sport: "Futsal",
			Date: util.MustDate("2024-09-15"), StartTime: "09:00", EndTime: "17:00",
			Description: "Torneio entre as categorias da academia"},
	}
}
