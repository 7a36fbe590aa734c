package accounts

import (
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CreateAccountRequest struct {
	Name         string      `json:"name" validate:"required,min=2,max=150"`
	Email        string      `json:"email" validate:"required,email"`
	Password     string      `json:"password" validate:"required,min=8"`
	Role         models.Role `json:"role" validate:"required"`
	Division     string      `json:"division" validate:"omitempty,max=150"`
	Jabatan      string      `json:"jabatan" validate:"omitempty,max=150"`
	EmployeeCode string      `json:"employee_code" validate:"omitempty,max=50"`
}

type UpdateAccountRequest struct {
	Name         *string      `json:"name" validate:"omitempty,min=2,max=150"`
	Email        *string      `json:"email" validate:"omitempty,email"`
	Role         *models.Role `json:"role"`
	Division     *string      `json:"division" validate:"omitempty,max=150"`
	Jabatan      *string      `json:"jabatan" validate:"omitempty,max=150"`
	EmployeeCode *string      `json:"employee_code" validate:"omitempty,max=50"`
}

// Validate runs the struct tags plus the enum checks the tags can't express.
// Errors come back field-keyed so the form can place them inline.
func (r *CreateAccountRequest) Validate() map[string]string {
	errors := validationErrors(validate.Struct(r))

	if r.Role != "" && !r.Role.IsValid() {
		errors["role"] = "role harus Super Admin, Admin, Staff, atau Pelamar"
	}

	return errors
}

func (r *UpdateAccountRequest) Validate() map[string]string {
	errors := validationErrors(validate.Struct(r))

	if r.Role != nil && !r.Role.IsValid() {
		errors["role"] = "role harus Super Admin, Admin, Staff, atau Pelamar"
	}

	return errors
}

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if err == nil {
		return errors
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = field + " wajib diisi"
		case "email":
			errors[field] = "format email tidak valid"
		case "min":
			errors[field] = field + " minimal " + fe.Param() + " karakter"
		case "max":
			errors[field] = field + " maksimal " + fe.Param() + " karakter"
		default:
			errors[field] = field + " tidak valid"
		}
	}
	return errors
}

// ApplyUpdate copies the set fields onto the account.
func ApplyUpdate(account *models.Account, req *UpdateAccountRequest) {
	if account == nil || req == nil {
		return
	}

	if req.Name != nil {
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		account.Email = strings.TrimSpace(*req.Email)
	}
	if req.Role != nil {
		account.Role = *req.Role
	}
	if req.Division != nil {
		account.Division = strings.TrimSpace(*req.Division)
	}
	if req.Jabatan != nil {
		account.Jabatan = strings.TrimSpace(*req.Jabatan)
	}
	if req.EmployeeCode != nil {
		account.EmployeeCode = strings.TrimSpace(*req.EmployeeCode)
	}
}

type AccountResponse struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Role         models.Role          `json:"role"`
	Status       models.AccountStatus `json:"status"`
	Division     string               `json:"division,omitempty"`
	Jabatan      string               `json:"jabatan,omitempty"`
	EmployeeCode string               `json:"employee_code,omitempty"`
	LastLoginAt  *time.Time           `json:"last_login_at,omitempty"`
	InactiveAt   *time.Time           `json:"inactive_at,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	if a == nil {
		return AccountResponse{}
	}
	return AccountResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		Status:       a.Status,
		Division:     a.Division,
		Jabatan:      a.Jabatan,
		EmployeeCode: a.EmployeeCode,
		LastLoginAt:  a.LastLoginAt,
		InactiveAt:   a.InactiveAt,
		CreatedAt:    a.CreatedAt,
	}
}

func NewAccountResponses(accounts []models.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}

// ResetPasswordResponse carries the generated password. It is shown exactly
// once; the server keeps only the hash.
type ResetPasswordResponse struct {
	AccountID   uint   `json:"account_id"`
	NewPassword string `json:"new_password"`
}
