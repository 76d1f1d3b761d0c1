package auth

import (
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// RequestCodeInput names the destination of a new verification code.
type RequestCodeInput struct {
	Kind        domain.ChannelKind
	Destination string
}

// Validate validates the input and returns the parsed channel.
func (i RequestCodeInput) Validate() (domain.Channel, error) {
	return parseChannel(i.Kind, i.Destination)
}

// LoginWithCodeInput holds parameters for a verification code login.
type LoginWithCodeInput struct {
	Kind        domain.ChannelKind
	Destination string
	Code        string
}

// Validate validates the input and returns the parsed channel.
func (i LoginWithCodeInput) Validate() (domain.Channel, error) {
	ch, err := parseChannel(i.Kind, i.Destination)
	if err != nil {
		return domain.Channel{}, err
	}
	if i.Code == "" {
		return domain.Channel{}, domain.NewValidationError("code", "required")
	}
	if len(i.Code) > 16 {
		return domain.Channel{}, domain.NewValidationError("code", "too long")
	}
	return ch, nil
}

// GoogleLoginInput holds the ID token returned by Google Sign-In.
type GoogleLoginInput struct {
	IDToken string
}

// Validate validates the Google login input.
func (i GoogleLoginInput) Validate() error {
	var errs []domain.FieldError

	if i.IDToken == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	} else if len(i.IDToken) > 4096 {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func parseChannel(kind domain.ChannelKind, destination string) (domain.Channel, error) {
	switch kind {
	case domain.ChannelPhone:
		return domain.ParsePhoneChannel(destination)
	case domain.ChannelEmail:
		return domain.ParseEmailChannel(destination)
	default:
		return domain.Channel{}, domain.NewValidationError("channel", "unsupported channel")
	}
}
