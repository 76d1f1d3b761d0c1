package domain

import (
	"regexp"
	"strings"
	"time"
)

// VerificationCode is a one-time code sent to a phone number or an email.
// Exactly one of PhoneNumber and Email is set.
type VerificationCode struct {
	ID          int64
	PhoneNumber *string
	Email       *string
	Code        string
	CreatedAt   time.Time
	UsedAt      *time.Time
}

// IsUsed reports whether the code was already consumed.
func (c *VerificationCode) IsUsed() bool {
	return c.UsedAt != nil
}

// Channel is the destination a verification code is issued for.
type Channel struct {
	Kind  ChannelKind
	Value string
}

func (c Channel) String() string { return string(c.Kind) + ":" + c.Value }

var mobileRe = regexp.MustCompile(`^(0)?9\d{9}$`)

// ParsePhoneChannel validates an Iranian mobile number and normalises it to
// the 09xxxxxxxxx form.
func ParsePhoneChannel(phone string) (Channel, error) {
	phone = strings.TrimSpace(phone)
	if !mobileRe.MatchString(phone) {
		return Channel{}, NewValidationError("phone_number", "invalid mobile number")
	}
	if !strings.HasPrefix(phone, "0") {
		phone = "0" + phone
	}
	return Channel{Kind: ChannelPhone, Value: phone}, nil
}

// ParseEmailChannel validates an email address.
func ParseEmailChannel(email string) (Channel, error) {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return Channel{}, NewValidationError("email", "invalid email")
	}
	return Channel{Kind: ChannelEmail, Value: email}, nil
}
