package models

import "slices"

// Dataset is the full set of collections the dashboard renders.
type Dataset struct {
	Sports     []SportModality `json:"sports"`
	Modalities []SportModality `json:"modalities"`
	Students   []Student       `json:"students"`
	Teachers   []Teacher       `json:"teachers"`
	Payments   []Payment       `json:"payments"`
	Events     []Event         `json:"events"`
	Roles      []Role          `json:"roles"`
	Users      []User          `json:"users"`
}

// Repository is the read-only data-access boundary used by screens and the auth gate.
type Repository interface {
	Sports() []SportModality
	Students() []Student
	Student(id string) (Student, error)
	Teachers() []Teacher
	Teacher(id string) (Teacher, error)
	Payments() []Payment
	Events() []Event
	Modalities() []SportModality
	Modality(id string) (SportModality, error)
	Roles() []Role
	Role(id string) (Role, error)
	Users() []User
	User(id string) (User, error)
	UserByUsername(username string) (User, error)
}

// Store serves a Dataset that never changes after construction. Accessors and lookups
// return deep copies, so callers cannot reach the stored records and the store is safe
// for concurrent use without locking.
type Store struct {
	data Dataset
}

func NewStore(data Dataset) *Store {
	return &Store{data: data}
}

func (s *Store) Sports() []SportModality     { return cloneEach(s.data.Sports, SportModality.copy) }
func (s *Store) Students() []Student         { return cloneEach(s.data.Students, Student.copy) }
func (s *Store) Teachers() []Teacher         { return cloneEach(s.data.Teachers, Teacher.copy) }
func (s *Store) Payments() []Payment         { return cloneEach(s.data.Payments, Payment.copy) }
func (s *Store) Events() []Event             { return slices.Clone(s.data.Events) }
func (s *Store) Modalities() []SportModality { return cloneEach(s.data.Modalities, SportModality.copy) }
func (s *Store) Roles() []Role               { return cloneEach(s.data.Roles, Role.copy) }
func (s *Store) Users() []User               { return slices.Clone(s.data.Users) }

func (s *Store) Student(id string) (Student, error) {
	for _, st := range s.data.Students {
		if st.ID == id {
			return st.copy(), nil
		}
	}
	return Student{}, notFound("student", id)
}

func (s *Store) Teacher(id string) (Teacher, error) {
	for _, t := range s.data.Teachers {
		if t.ID == id {
			return t.copy(), nil
		}
	}
	return Teacher{}, notFound("teacher", id)
}

func (s *Store) Modality(id string) (SportModality, error) {
	for _, m := range s.data.Modalities {
		if m.ID == id {
			return m.copy(), nil
		}
	}
	return SportModality{}, notFound("modality", id)
}

func (s *Store) Role(id string) (Role, error) {
	for _, r := range s.data.Roles {
		if r.ID == id {
			return r.copy(), nil
		}
	}
	return Role{}, notFound("role", id)
}

func (s *Store) User(id string) (User, error) {
	for _, u := range s.data.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, notFound("user", id)
}

// UserByUsername matches the username exactly.
func (s *Store) UserByUsername(username string) (User, error) {
	for _, u := range s.data.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, notFound("user", username)
}

func cloneEach[T any](in []T, copyFn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = copyFn(v)
	}
	return out
}

func (st Student) copy() Student {
	st.Sports = slices.Clone(st.Sports)
	st.Health.Allergies = slices.Clone(st.Health.Allergies)
	st.Health.Medications = slices.Clone(st.Health.Medications)
	st.Health.Restrictions = slices.Clone(st.Health.Restrictions)
	return st
}

func (t Teacher) copy() Teacher {
	t.Sports = slices.Clone(t.Sports)
	return t
}

func (p Payment) copy() Payment {
	if p.PaidDate != nil {
		paid := *p.PaidDate
		p.PaidDate = &paid
	}
	return p
}

func (m SportModality) copy() SportModality {
	m.Equipment = slices.Clone(m.Equipment)
	m.Schedule.Days = slices.Clone(m.Schedule.Days)
	return m
}

func (r Role) copy() Role {
	r.Permissions = slices.Clone(r.Permissions)
	return r
}
