// schemas.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"time"

	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/shopspring/decimal"
)

// Page is the pagination envelope for list endpoints.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest carries a new user registration.
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	Active   *bool       `json:"active"`
}

// ParishRequest carries a parish creation.
type ParishRequest struct {
	Name string `json:"name"`
}

// ParishUpdateRequest carries a partial parish update.
type ParishUpdateRequest struct {
	Name *string `json:"name"`
}

// CommunityRequest carries a community creation.
type CommunityRequest struct {
	ParishID uint   `json:"parish_id"`
	Name     string `json:"name"`
}

// CommunityUpdateRequest carries a partial community update.
type CommunityUpdateRequest struct {
	ParishID *uint   `json:"parish_id"`
	Name     *string `json:"name"`
}

// ParishionerRequest carries a parishioner creation. Active defaults to true
// when omitted.
type ParishionerRequest struct {
	CommunityID uint         `json:"community_id"`
	Name        string       `json:"name"`
	NationalID  *string      `json:"national_id"`
	Phone       *string      `json:"phone"`
	Email       *string      `json:"email"`
	BirthDate   *models.Date `json:"birth_date"`
	Address     *string      `json:"address"`
	Active      *bool        `json:"active"`
	Notes       *string      `json:"notes"`
}

// ParishionerUpdateRequest carries a partial parishioner update.
type ParishionerUpdateRequest struct {
	CommunityID *uint        `json:"community_id"`
	Name        *string      `json:"name"`
	NationalID  *string      `json:"national_id"`
	Phone       *string      `json:"phone"`
	Email       *string      `json:"email"`
	BirthDate   *models.Date `json:"birth_date"`
	Address     *string      `json:"address"`
	Active      *bool        `json:"active"`
	Notes       *string      `json:"notes"`
}

// ContributionRequest carries a contribution creation.
type ContributionRequest struct {
	ParishionerID    *uint                   `json:"parishioner_id"`
	CommunityID      uint                    `json:"community_id"`
	Type             models.ContributionType `json:"type"`
	Amount           decimal.Decimal         `json:"amount"`
	ContributionDate *models.Date            `json:"contribution_date"`
	PaymentMethod    *string                 `json:"payment_method"`
	ReferenceMonth   *string                 `json:"reference_month"`
	Notes            *string                 `json:"notes"`
}

// ContributionUpdateRequest carries a partial contribution update.
type ContributionUpdateRequest struct {
	ParishionerID    *uint                    `json:"parishioner_id"`
	CommunityID      *uint                    `json:"community_id"`
	Type             *models.ContributionType `json:"type"`
	Amount           *decimal.Decimal         `json:"amount"`
	ContributionDate *models.Date             `json:"contribution_date"`
	PaymentMethod    *string                  `json:"payment_method"`
	ReferenceMonth   *string                  `json:"reference_month"`
	Notes            *string                  `json:"notes"`
}

// ContributionResponse is the wire shape of a contribution. Amounts travel
// as fixed-point decimal strings with two fraction digits.
type ContributionResponse struct {
	ID               uint                    `json:"id"`
	ParishionerID    *uint                   `json:"parishioner_id"`
	CommunityID      uint                    `json:"community_id"`
	Type             models.ContributionType `json:"type"`
	Amount           string                  `json:"amount"`
	ContributionDate models.Date             `json:"contribution_date"`
	PaymentMethod    *string                 `json:"payment_method"`
	ReferenceMonth   *string                 `json:"reference_month"`
	Notes            *string                 `json:"notes"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func newContributionResponse(m models.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:               m.ID,
		ParishionerID:    m.ParishionerID,
		CommunityID:      m.CommunityID,
		Type:             m.Type,
		Amount:           m.Amount.StringFixed(2),
		ContributionDate: m.ContributionDate,
		PaymentMethod:    m.PaymentMethod,
		ReferenceMonth:   m.ReferenceMonth,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func newContributionResponses(ms []models.Contribution) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, newContributionResponse(m))
	}
	return out
}

// PeriodTotalResponse is the wire shape of the period-total report.
type PeriodTotalResponse struct {
	Total       string      `json:"total"`
	Count       int64       `json:"count"`
	StartDate   models.Date `json:"start_date"`
	EndDate     models.Date `json:"end_date"`
	CommunityID *uint       `json:"community_id"`
}

// TypeTotalResponse is one per-type entry in the type-totals report.
type TypeTotalResponse struct {
	Type  models.ContributionType `json:"type"`
	Total string                  `json:"total"`
	Count int64                   `json:"count"`
}

// TypeTotalsResponse is the wire shape of the type-totals report.
type TypeTotalsResponse struct {
	StartDate   models.Date         `json:"start_date"`
	EndDate     models.Date         `json:"end_date"`
	CommunityID *uint               `json:"community_id"`
	Totals      []TypeTotalResponse `json:"totals"`
}

// HistoryResponse is the wire shape of a parishioner's contribution history.
type HistoryResponse struct {
	ParishionerID   uint                   `json:"parishioner_id"`
	ParishionerName string                 `json:"parishioner_name"`
	Total           string                 `json:"total"`
	Count           int                    `json:"count"`
	Contributions   []ContributionResponse `json:"contributions"`
}

func newHistoryResponse(h *services.ParishionerHistory) HistoryResponse {
	return HistoryResponse{
		ParishionerID:   h.ParishionerID,
		ParishionerName: h.ParishionerName,
		Total:           h.Total.StringFixed(2),
		Count:           h.Count,
		Contributions:   newContributionResponses(h.Contributions),
	}
}
