package validator

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	idlocale "github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	v10 "github.com/go-playground/validator/v10"
	id_translations "github.com/go-playground/validator/v10/translations/id"
)

// Tag custom untuk bentuk email / nomor telepon.
const (
	TagEmail = "ojol_email"
	TagPhone = "ojol_phone"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	// nomor telepon Indonesia, 10-12 digit
	phonePattern = regexp.MustCompile(`^[0-9]{10,12}$`)
)

// Singleton validator dari go-playground
var (
	once  sync.Once
	v     *v10.Validate
	trans ut.Translator
)

// New mengembalikan instance validator yang sama (thread-safe).
func New() *v10.Validate {
	once.Do(func() {
		v = v10.New()
		v.RegisterTagNameFunc(jsonFieldName)

		_ = v.RegisterValidation(TagEmail, func(fl v10.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})
		_ = v.RegisterValidation(TagPhone, func(fl v10.FieldLevel) bool {
			return IsPhoneNumber(fl.Field().String())
		})

		idLoc := idlocale.New()
		uni := ut.New(idLoc, idLoc, en.New())
		trans, _ = uni.GetTranslator("id")
		if trans != nil {
			_ = id_translations.RegisterDefaultTranslations(v, trans)
		}
	})
	return v
}

// IsEmail reports whether input looks like an email address.
func IsEmail(input string) bool {
	return emailPattern.MatchString(input)
}

// IsPhoneNumber reports whether input is a 10-12 digit phone number.
func IsPhoneNumber(input string) bool {
	return phonePattern.MatchString(input)
}

// ValidateStruct memvalidasi struct dan merapikan error menjadi map[field]message.
func ValidateStruct(s any) (map[string]string, error) {
	err := New().Struct(s)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(v10.ValidationErrors)
	if !ok {
		// bukan error validasi terstruktur
		return map[string]string{"_": err.Error()}, err
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = msgForTag(fe)
	}
	return fields, err
}

// msgForTag bikin pesan ringkas per rule
func msgForTag(fe v10.FieldError) string {
	switch fe.Tag() {
	case TagEmail:
		return "must be a valid email"
	case TagPhone:
		return "must be a 10-12 digit phone number"
	}
	if trans != nil {
		return fe.Translate(trans)
	}
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email"
	default:
		return fe.Error()
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
