package models

import "time"

type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
	StudentPending  StudentStatus = "pending"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

type EventType string

const (
	EventTraining   EventType = "training"
	EventGame       EventType = "game"
	EventEvaluation EventType = "evaluation"
	EventSpecial    EventType = "special"
	EventMeeting    EventType = "meeting"
)

// PermissionAll grants every permission.
const PermissionAll = "all"

type Address struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type Guardian struct {
	Name       string `json:"name"`
	CPF        string `json:"cpf"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

type HealthInfo struct {
	Allergies     []string `json:"allergies"`
	Medications   []string `json:"medications"`
	Restrictions  []string `json:"restrictions"`
	DoctorContact string   `json:"doctorContact"`
	HealthPlan    string   `json:"healthPlan"`
}

type Student struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	DateOfBirth      time.Time        `json:"dateOfBirth"`
	CPF              string           `json:"cpf"`
	Address          Address          `json:"address"`
	Status           StudentStatus    `json:"status"`
	Sports           []string         `json:"sports"`
	Guardian         Guardian         `json:"guardian"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Health           HealthInfo       `json:"healthInfo"`
	EnrollmentDate   time.Time        `json:"enrollmentDate"`
	MonthlyFee       float64          `json:"monthlyFee"`
}

type Teacher struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Nickname  string    `json:"nickname"`
	Identity  string    `json:"identity"`
	CPF       string    `json:"cpf"`
	Education string    `json:"education"`
	Sports    []string  `json:"sports"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   Address   `json:"address"`
	HireDate  time.Time `json:"hireDate"`
	Salary    float64   `json:"salary"`
	Active    bool      `json:"isActive"`
}

// Payment is one monthly fee charge. StudentName and Sport are copied from the student
// when the payment is generated.
type Payment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	StudentName string        `json:"studentName"`
	Sport       string        `json:"sport"`
	Amount      float64       `json:"amount"`
	Month       string        `json:"month"`
	DueDate     time.Time     `json:"dueDate"`
	PaidDate    *time.Time    `json:"paidDate,omitempty"`
	Status      PaymentStatus `json:"status"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Sport       string    `json:"sport"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Description string    `json:"description,omitempty"`
}

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Schedule struct {
	Days []string `json:"days"`
	Time string   `json:"time"`
}

type SportModality struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AgeRange    AgeRange `json:"ageRange"`
	MonthlyFee  float64  `json:"monthlyFee"`
	Capacity    int      `json:"maxStudents"`
	Equipment   []string `json:"equipment"`
	Schedule    Schedule `json:"schedule"`
	Active      bool     `json:"isActive"`
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the role lists the permission or the "all" wildcard.
func (r Role) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == PermissionAll || p == permission {
			return true
		}
	}
	return false
}

// User is a system account. Role holds a role name, not a reference.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
