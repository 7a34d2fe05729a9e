package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Students:   []Student{{ID: "1", Name: "Lucas Silva Santos", Status: StudentActive}},
		Teachers:   []Teacher{{ID: "1", FullName: "Carlos Eduardo Silva", Active: true}},
		Modalities: []SportModality{{ID: "7", Name: "Balé"}},
		Roles:      []Role{{ID: "1", Name: "Administrador", Permissions: []string{PermissionAll}}},
		Users:      []User{{ID: "1", Username: "admin", Password: "admin", Active: true}},
	}
}

func TestStoreLookups(t *testing.T) {
	store := NewStore(sampleDataset())

	st, err := store.Student("1")
	require.NoError(t, err)
	assert.Equal(t, "Lucas Silva Santos", st.Name)

	_, err = store.Teacher("1")
	assert.NoError(t, err)
	_, err = store.Modality("7")
	assert.NoError(t, err)
	_, err = store.Role("1")
	assert.NoError(t, err)
	_, err = store.User("1")
	assert.NoError(t, err)

	u, err := store.UserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
}

func TestStoreNotFound(t *testing.T) {
	store := NewStore(sampleDataset())

	tests := []struct {
		name   string
		lookup func() error
		entity string
	}{
		{"student", func() error { _, err := store.Student("99"); return err }, "student"},
		{"teacher", func() error { _, err := store.Teacher("99"); return err }, "teacher"},
		{"modality", func() error { _, err := store.Modality("99"); return err }, "modality"},
		{"role", func() error { _, err := store.Role("99"); return err }, "role"},
		{"user", func() error { _, err := store.User("99"); return err }, "user"},
		{"username is case sensitive", func() error { _, err := store.UserByUsername("ADMIN"); return err }, "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotFound))

			var nf *NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.entity, nf.Entity)
		})
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore(sampleDataset())

	students := store.Students()
	students[0].Name = "changed"

	again := store.Students()
	assert.Equal(t, "Lucas Silva Santos", again[0].Name)
}

func TestStoreCopiesNestedFields(t *testing.T) {
	paid := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)
	data := sampleDataset()
	data.Students[0].Sports = []string{"Futebol"}
	data.Students[0].Health.Allergies = []string{"Amendoim"}
	data.Teachers[0].Sports = []string{"Vôlei"}
	data.Modalities[0].Equipment = []string{"Sapatilha"}
	data.Modalities[0].Schedule.Days = []string{"Segunda"}
	data.Payments = []Payment{{ID: "1", PaidDate: &paid}}
	store := NewStore(data)

	students := store.Students()
	students[0].Sports[0] = "changed"
	students[0].Health.Allergies[0] = "changed"
	st, err := store.Student("1")
	require.NoError(t, err)
	st.Sports[0] = "changed"

	store.Teachers()[0].Sports[0] = "changed"
	m := store.Modalities()[0]
	m.Equipment[0] = "changed"
	m.Schedule.Days[0] = "changed"
	store.Roles()[0].Permissions[0] = "changed"
	role, err := store.Role("1")
	require.NoError(t, err)
	role.Permissions[0] = "changed"
	*store.Payments()[0].PaidDate = time.Time{}

	again, err := store.Student("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Futebol"}, again.Sports)
	assert.Equal(t, []string{"Amendoim"}, again.Health.Allergies)
	assert.Equal(t, []string{"Vôlei"}, store.Teachers()[0].Sports)
	assert.Equal(t, []string{"Sapatilha"}, store.Modalities()[0].Equipment)
	assert.Equal(t, []string{"Segunda"}, store.Modalities()[0].Schedule.Days)
	assert.True(t, store.Roles()[0].HasPermission("financial:write"))
	assert.Equal(t, paid, *store.Payments()[0].PaidDate)
}

func TestRoleHasPermission(t *testing.T) {
	admin := Role{Permissions: []string{PermissionAll}}
	teacher := Role{Permissions: []string{"students:read", "calendar:read"}}

	assert.True(t, admin.HasPermission("financial:write"))
	assert.True(t, teacher.HasPermission("calendar:read"))
	assert.False(t, teacher.HasPermission("financial:read"))
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Pago", PaymentPaid.Display().DisplayName)
	assert.Equal(t, "A Vencer", PaymentPending.Display().DisplayName)
	assert.Equal(t, "Em Atraso", PaymentOverdue.Display().DisplayName)
	assert.Equal(t, "Pendente", StudentPending.Display().DisplayName)
	assert.Equal(t, "Reunião", EventMeeting.Display().DisplayName)
	assert.Equal(t, "Inativo", ActiveDisplay(false).DisplayName)
	assert.Equal(t, "mystery", PaymentStatus("mystery").Display().DisplayName)
}
