package models

import (
	"strings"

	vld "github.com/hoshichaam/ojol_app_go/pkg/validator"
)

// Role pengguna aplikasi: penumpang atau driver.
type Role string

const (
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
)

func (r Role) IsDriver() bool { return r == RoleDriver }

// ValidationError is returned when a draft is missing required input.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e ValidationError) Error() string { return e.Message }

// Is matches on Message so the package-level values work with errors.Is
// even after Fields has been filled in.
func (e ValidationError) Is(target error) bool {
	t, ok := target.(ValidationError)
	return ok && t.Message == e.Message
}

var (
	ErrIncompleteAccount = ValidationError{Message: "account fields are incomplete"}
	ErrIncompleteVehicle = ValidationError{Message: "vehicle fields are incomplete"}
	ErrIncompleteLogin   = ValidationError{Message: "login fields are incomplete"}
	ErrMissingEmail      = ValidationError{Message: "email is required"}
)

// Vehicle hanya diisi oleh driver.
type Vehicle struct {
	Type  string `json:"tipeKendaraan"  validate:"required"`
	Brand string `json:"merek"          validate:"required"`
	Color string `json:"warnaKendaraan" validate:"required"`
	Plate string `json:"noPlat"         validate:"required"`
}

// Normalized returns the vehicle with every field upper-cased.
func (v Vehicle) Normalized() Vehicle {
	return Vehicle{
		Type:  strings.ToUpper(v.Type),
		Brand: strings.ToUpper(v.Brand),
		Color: strings.ToUpper(v.Color),
		Plate: strings.ToUpper(v.Plate),
	}
}

// RegistrationDraft adalah isian form daftar yang belum dikirim.
type RegistrationDraft struct {
	Username string  `json:"username" validate:"required"`
	Name     string  `json:"nama"     validate:"required"`
	Email    string  `json:"email"    validate:"required"`
	Phone    string  `json:"phone"    validate:"required"`
	Role     Role    `json:"role"     validate:"required"`
	Password string  `json:"password" validate:"required"`
	Vehicle  Vehicle `json:"vehicle"  validate:"-"`
}

// Account holds the fields every applicant submits.
type Account struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Role     Role
	Password string
}

// Applicant is a validated registration: either Rider or Driver.
type Applicant interface {
	account() Account
}

type Rider struct {
	Account
}

type Driver struct {
	Account
	Vehicle Vehicle
}

func (r Rider) account() Account  { return r.Account }
func (d Driver) account() Account { return d.Account }

// Normalized upper-cases the name and, for drivers, the vehicle fields.
// Applying it twice yields the same draft.
func (d RegistrationDraft) Normalized() RegistrationDraft {
	d.Name = strings.ToUpper(d.Name)
	d.Vehicle = d.Vehicle.Normalized()
	return d
}

// Applicant validates the draft and returns its submit-ready variant.
// Vehicle fields are checked only for drivers and dropped for everyone else.
func (d RegistrationDraft) Applicant() (Applicant, error) {
	if fields, err := vld.ValidateStruct(d); err != nil {
		e := ErrIncompleteAccount
		e.Fields = fields
		return nil, e
	}
	acc := Account{
		Username: d.Username,
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		Role:     d.Role,
		Password: d.Password,
	}
	if !d.Role.IsDriver() {
		return Rider{Account: acc}, nil
	}
	if fields, err := vld.ValidateStruct(d.Vehicle); err != nil {
		e := ErrIncompleteVehicle
		e.Fields = fields
		return nil, e
	}
	return Driver{Account: acc, Vehicle: d.Vehicle}, nil
}

// LoginDraft: email atau username + password.
type LoginDraft struct {
	Identifier string `json:"loginInput" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

func (d LoginDraft) Validate() error {
	if fields, err := vld.ValidateStruct(d); err != nil {
		e := ErrIncompleteLogin
		e.Fields = fields
		return e
	}
	return nil
}

type ForgotPasswordDraft struct {
	Email string `json:"email" validate:"required"`
}

func (d ForgotPasswordDraft) Validate() error {
	if fields, err := vld.ValidateStruct(d); err != nil {
		e := ErrMissingEmail
		e.Fields = fields
		return e
	}
	return nil
}
