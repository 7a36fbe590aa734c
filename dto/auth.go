package dto

import (
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	TokenType    string         `json:"token_type,omitempty"`
	ExpiresAt    time.Time      `json:"expires_at"`
	Account      AccountSummary `json:"account"`
}

type AccountSummary struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Role         models.Role          `json:"role"`
	Status       models.AccountStatus `json:"status"`
	Division     string               `json:"division,omitempty"`
	Jabatan      string               `json:"jabatan,omitempty"`
	EmployeeCode string               `json:"employee_code,omitempty"`
	LastLoginAt  *time.Time           `json:"last_login_at,omitempty"`
}

func NewAccountSummary(a *models.Account) AccountSummary {
	if a == nil {
		return AccountSummary{}
	}
	return AccountSummary{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		Status:       a.Status,
		Division:     a.Division,
		Jabatan:      a.Jabatan,
		EmployeeCode: a.EmployeeCode,
		LastLoginAt:  a.LastLoginAt,
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}
