package sales

import (
	"errors"
	"time"
)

// Status values are persisted exactly as the dashboards display them.
const (
	StatusProvisioning = "Em Aprovisionamento"
	StatusInstalled    = "Instalada"
	StatusPendingIssue = "Pendência"
	StatusCancelled    = "Cancelada"
	StatusDraft        = "Draft"
)

const (
	PeriodMorning   = "Manhã"
	PeriodAfternoon = "Tarde"
)

var ErrNotFound = errors.New("sale not found")

// Sale is one logged sale, owned by the agent who created it. Admins may
// edit or delete any sale; updatedAt is refreshed on every mutation.
type Sale struct {
	ID               string    `json:"id" firestore:"-"`
	AgentUID         string    `json:"agentUid" firestore:"agentUid"`
	AgentName        string    `json:"agentName,omitempty" firestore:"agentName,omitempty"`
	SaleDate         time.Time `json:"saleDate" firestore:"saleDate"`
	InstallationDate time.Time `json:"installationDate" firestore:"installationDate"`
	Period           string    `json:"period" firestore:"period"`
	Status           string    `json:"status" firestore:"status"`
	CustomerCpfCnpj  string    `json:"customerCpfCnpj" firestore:"customerCpfCnpj"`
	CustomerPhone    string    `json:"customerPhone" firestore:"customerPhone"`
	SaleType         string    `json:"saleType" firestore:"saleType"`
	PaymentMethod    string    `json:"paymentMethod" firestore:"paymentMethod"`
	Ticket           string    `json:"ticket" firestore:"ticket"`
	Speed            string    `json:"speed" firestore:"speed"`
	UF               string    `json:"uf" firestore:"uf"`
	OS               string    `json:"os" firestore:"os"`
	Notes            string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// SaleUpdate carries the fields a PATCH may change. Nil fields are left
// untouched. Dates decode into time.Time so an edited sale keeps matching
// the saleDate range queries; ownership and audit stamps are not part of
// this struct.
type SaleUpdate struct {
	AgentName        *string    `json:"agentName"`
	SaleDate         *time.Time `json:"saleDate"`
	InstallationDate *time.Time `json:"installationDate"`
	Period           *string    `json:"period"`
	Status           *string    `json:"status"`
	CustomerCpfCnpj  *string    `json:"customerCpfCnpj"`
	CustomerPhone    *string    `json:"customerPhone"`
	SaleType         *string    `json:"saleType"`
	PaymentMethod    *string    `json:"paymentMethod"`
	Ticket           *string    `json:"ticket"`
	Speed            *string    `json:"speed"`
	UF               *string    `json:"uf"`
	OS               *string    `json:"os"`
	Notes            *string    `json:"notes"`
}

// Fields flattens the set values into the update map the repo applies.
func (u SaleUpdate) Fields() map[string]interface{} {
	m := map[string]interface{}{}
	if u.AgentName != nil {
		m["agentName"] = *u.AgentName
	}
	if u.SaleDate != nil {
		m["saleDate"] = *u.SaleDate
	}
	if u.InstallationDate != nil {
		m["installationDate"] = *u.InstallationDate
	}
	if u.Period != nil {
		m["period"] = *u.Period
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	if u.CustomerCpfCnpj != nil {
		m["customerCpfCnpj"] = *u.CustomerCpfCnpj
	}
	if u.CustomerPhone != nil {
		m["customerPhone"] = *u.CustomerPhone
	}
	if u.SaleType != nil {
		m["saleType"] = *u.SaleType
	}
	if u.PaymentMethod != nil {
		m["paymentMethod"] = *u.PaymentMethod
	}
	if u.Ticket != nil {
		m["ticket"] = *u.Ticket
	}
	if u.Speed != nil {
		m["speed"] = *u.Speed
	}
	if u.UF != nil {
		m["uf"] = *u.UF
	}
	if u.OS != nil {
		m["os"] = *u.OS
	}
	if u.Notes != nil {
		m["notes"] = *u.Notes
	}
	return m
}

// MonthBounds returns the first instant of the month and the last day at
// 23:59:59, matching the inclusive saleDate window the queries use.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.Local)
	return start, end
}

// DayBounds returns 00:00:00 and 23:59:59 of the given day.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
	return start, end
}
