package rest

import (
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type alumnusResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             *string   `json:"email"`
	Phones            []string  `json:"phones"`
	DepartmentID      *int64    `json:"departmentId"`
	TenureID          *int64    `json:"tenureId"`
	Gender            *string   `json:"gender"`
	BirthDate         *Date     `json:"birthDate"`
	IsStaff           bool      `json:"isStaff"`
	Unit              *string   `json:"unit"`
	State             *string   `json:"state"`
	Address           *string   `json:"address"`
	PastExcoOffice    *string   `json:"pastExcoOffice"`
	CurrentExcoOffice *string   `json:"currentExcoOffice"`
	MergedInto        *int64    `json:"mergedInto"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	Department *departmentResponse `json:"department,omitempty"`
	Tenure     *tenureResponse     `json:"tenure,omitempty"`
}

func toAlumnusResponse(a *domain.Alumnus) alumnusResponse {
	resp := alumnusResponse{
		ID:                a.ID,
		Name:              a.Name,
		Email:             a.Email,
		Phones:            a.Phones,
		DepartmentID:      a.DepartmentID,
		TenureID:          a.TenureID,
		BirthDate:         newDate(a.BirthDate),
		IsStaff:           a.IsStaff,
		Unit:              a.Unit,
		State:             a.State,
		Address:           a.Address,
		PastExcoOffice:    a.PastExcoOffice,
		CurrentExcoOffice: a.CurrentExcoOffice,
		MergedInto:        a.MergedInto,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if resp.Phones == nil {
		resp.Phones = []string{}
	}
	if a.Gender != nil {
		g := a.Gender.String()
		resp.Gender = &g
	}
	return resp
}

func toAlumniResponse(list []domain.Alumnus) []alumnusResponse {
	out := make([]alumnusResponse, len(list))
	for i := range list {
		out[i] = toAlumnusResponse(&list[i])
	}
	return out
}

type duplicatePairResponse struct {
	First  alumnusResponse `json:"first"`
	Second alumnusResponse `json:"second"`
	Reason string          `json:"reason"`
}

type duplicatesResponse struct {
	Pairs  []duplicatePairResponse `json:"pairs"`
	Groups [][]alumnusResponse     `json:"groups,omitempty"`
}

func toDuplicatePairs(pairs []domain.DuplicatePair) []duplicatePairResponse {
	out := make([]duplicatePairResponse, len(pairs))
	for i := range pairs {
		out[i] = duplicatePairResponse{
			First:  toAlumnusResponse(&pairs[i].First),
			Second: toAlumnusResponse(&pairs[i].Second),
			Reason: pairs[i].Reason.String(),
		}
	}
	return out
}

type departmentResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	School    *string   `json:"school"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDepartmentResponse(d *domain.Department) departmentResponse {
	return departmentResponse{
		ID:        d.ID,
		Code:      d.Code,
		Name:      d.Name,
		School:    d.School,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type tenureResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	IsActive  bool      `json:"isActive"`
	StartDate *Date     `json:"startDate"`
	EndDate   *Date     `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTenureResponse(t *domain.Tenure) tenureResponse {
	return tenureResponse{
		ID:        t.ID,
		Name:      t.Name,
		Year:      t.Year,
		IsActive:  t.IsActive,
		StartDate: newDate(t.StartDate),
		EndDate:   newDate(t.EndDate),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type communicationResponse struct {
	ID         int64     `json:"id"`
	AlumnusID  int64     `json:"alumnusId"`
	UserID     *int64    `json:"userId"`
	Type       string    `json:"type"`
	Outcome    string    `json:"outcome"`
	Notes      *string   `json:"notes"`
	OccurredAt time.Time `json:"occurredAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCommunicationResponse(l *domain.CommunicationLog) communicationResponse {
	return communicationResponse{
		ID:         l.ID,
		AlumnusID:  l.AlumnusID,
		UserID:     l.UserID,
		Type:       l.Type.String(),
		Outcome:    l.Outcome.String(),
		Notes:      l.Notes,
		OccurredAt: l.OccurredAt,
		CreatedAt:  l.CreatedAt,
	}
}

type auditResponse struct {
	ID        int64          `json:"id"`
	UserID    *int64         `json:"userId"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toAuditResponse(r *domain.AuditRecord) auditResponse {
	return auditResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Action:    r.Action.String(),
		Changes:   r.Changes,
		CreatedAt: r.CreatedAt,
	}
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String()}
}

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
