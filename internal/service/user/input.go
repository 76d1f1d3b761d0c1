package user

import (
	"errors"
	"strings"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change). Enum fields accept either
// the canonical key or the label shown by the client. ClearGoal and
// ClearTargetWeight unset the stored value and cannot be combined with a new one.
// PregnantStatus and LactationStatus are required when Sex is female and
// reset to false when it is male.
type UpdateProfileInput struct {
	FullName          *string
	PhoneNumber       *string
	Email             *string
	Sex               *string
	PregnantStatus    *bool
	LactationStatus   *bool
	Birthdate         *string
	Height            *float64
	Weight            *float64
	TargetWeight      *float64
	ClearTargetWeight bool
	ExerciseLevel     *string
	Goal              *string
	ClearGoal         bool
}

// profileChanges is the parsed form of UpdateProfileInput.
type profileChanges struct {
	fullName      *string
	phone         *string
	email         *string
	sex           *domain.Sex
	birthdate     *domain.CalendarDate
	height        *float64
	weight        *float64
	targetWeight  *float64
	exerciseLevel *domain.ExerciseLevel
	goal          *domain.Goal
	pregnant      *bool
	lactating     *bool

	clearTargetWeight bool
	clearGoal         bool
}

// Validate validates the update profile input and parses its fields.
func (i UpdateProfileInput) Validate() (profileChanges, error) {
	var (
		c    profileChanges
		errs []domain.FieldError
	)

	fail := func(err error) {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	if i.FullName != nil {
		name := strings.TrimSpace(*i.FullName)
		if len(name) > 255 {
			errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
		}
		c.fullName = &name
	}

	if i.PhoneNumber != nil {
		ch, err := domain.ParsePhoneChannel(*i.PhoneNumber)
		if err != nil {
			fail(err)
		} else {
			c.phone = &ch.Value
		}
	}

	if i.Email != nil {
		ch, err := domain.ParseEmailChannel(*i.Email)
		if err != nil {
			fail(err)
		} else {
			c.email = &ch.Value
		}
	}

	if i.Sex != nil {
		v, err := domain.ParseSex(*i.Sex)
		if err != nil {
			fail(err)
		} else {
			c.sex = &v
		}
	}

	switch {
	case c.sex != nil && *c.sex == domain.SexFemale:
		if i.PregnantStatus == nil {
			errs = append(errs, domain.FieldError{Field: "pregnant_status", Message: "required when sex is female"})
		}
		if i.LactationStatus == nil {
			errs = append(errs, domain.FieldError{Field: "lactation_status", Message: "required when sex is female"})
		}
		c.pregnant, c.lactating = i.PregnantStatus, i.LactationStatus
	case c.sex != nil:
		no := false
		c.pregnant, c.lactating = &no, &no
	default:
		c.pregnant, c.lactating = i.PregnantStatus, i.LactationStatus
	}

	if i.Birthdate != nil {
		d, err := domain.ParseCalendarDate(*i.Birthdate)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "birthdate", Message: "expected YYYY/MM/DD"})
		} else {
			c.birthdate = &d
		}
	}

	errs = appendRange(errs, "height", i.Height, 50, 260)
	errs = appendRange(errs, "weight", i.Weight, 20, 400)
	errs = appendRange(errs, "target_weight", i.TargetWeight, 20, 400)
	c.height, c.weight, c.targetWeight = i.Height, i.Weight, i.TargetWeight
	if i.ClearTargetWeight {
		if i.TargetWeight != nil {
			errs = append(errs, domain.FieldError{Field: "target_weight", Message: "cannot be set and cleared"})
		}
		c.clearTargetWeight = true
	}

	if i.ExerciseLevel != nil {
		v, err := domain.ParseExerciseLevel(*i.ExerciseLevel)
		if err != nil {
			fail(err)
		} else {
			c.exerciseLevel = &v
		}
	}

	if i.Goal != nil {
		v, err := domain.ParseGoal(*i.Goal)
		if err != nil {
			fail(err)
		} else {
			c.goal = &v
		}
	}
	if i.ClearGoal {
		if i.Goal != nil {
			errs = append(errs, domain.FieldError{Field: "goal", Message: "cannot be set and cleared"})
		}
		c.clearGoal = true
	}

	if len(errs) > 0 {
		return profileChanges{}, &domain.ValidationError{Errors: errs}
	}
	return c, nil
}

// apply copies the set fields onto u and reports whether the weight changed.
func (c profileChanges) apply(u *domain.User) (weightChanged bool) {
	if c.fullName != nil {
		u.FullName = *c.fullName
	}
	if c.phone != nil {
		u.PhoneNumber = c.phone
	}
	if c.email != nil {
		u.Email = c.email
	}

	p := &u.Profile
	if c.sex != nil {
		p.Sex = c.sex
	}
	if c.birthdate != nil {
		p.Birthdate = c.birthdate
	}
	if c.height != nil {
		p.HeightCM = *c.height
	}
	if c.weight != nil {
		weightChanged = p.WeightKG != *c.weight
		p.WeightKG = *c.weight
	}
	if c.targetWeight != nil {
		p.TargetWeightKG = c.targetWeight
	}
	if c.clearTargetWeight {
		p.TargetWeightKG = nil
	}
	if c.exerciseLevel != nil {
		p.ExerciseLevel = c.exerciseLevel
	}
	if c.goal != nil {
		p.Goal = c.goal
	}
	if c.clearGoal {
		p.Goal = nil
	}
	if c.pregnant != nil {
		p.Pregnant = *c.pregnant
	}
	if c.lactating != nil {
		p.Lactating = *c.lactating
	}
	p.RegistrationCompleted = true

	return weightChanged
}

func appendRange(errs []domain.FieldError, field string, v *float64, minV, maxV float64) []domain.FieldError {
	if v == nil {
		return errs
	}
	if *v < minV || *v > maxV {
		return append(errs, domain.FieldError{Field: field, Message: "out of range"})
	}
	return errs
}
