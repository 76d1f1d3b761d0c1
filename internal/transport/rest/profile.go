package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	ToggleNotifications(ctx context.Context) (*domain.User, error)
}

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type userResponse struct {
	ID                  string     `json:"id"`
	FullName            string     `json:"full_name"`
	PhoneNumber         *string    `json:"phone_number"`
	Email               *string    `json:"email"`
	Sex                 *string    `json:"sex"`
	Birthdate           *string    `json:"birthdate"`
	Height              float64    `json:"height"`
	Weight              float64    `json:"weight"`
	TargetWeight        *float64   `json:"target_weight"`
	ExerciseLevel       *string    `json:"exercise_level"`
	Goal                *string    `json:"goal"`
	PregnantStatus      bool       `json:"pregnant_status"`
	LactationStatus     bool       `json:"lactation_status"`
	AllowNotification   bool       `json:"allow_notification"`
	RegisterCompletedAt *time.Time `json:"register_completed_at"`
	CreatedAt           time.Time  `json:"created_at"`
}

type profileResponse struct {
	User userResponse `json:"user"`
}

type updateProfileRequest struct {
	FullName        *string           `json:"full_name"`
	PhoneNumber     *string           `json:"phone_number"`
	Email           *string           `json:"email"`
	Sex             *string           `json:"sex"`
	PregnantStatus  *bool             `json:"pregnant_status"`
	LactationStatus *bool             `json:"lactation_status"`
	Birthdate       *string           `json:"birthdate"`
	Height          *float64          `json:"height"`
	Weight          *float64          `json:"weight"`
	TargetWeight    nullable[float64] `json:"target_weight"`
	ExerciseLevel   *string           `json:"exercise_level"`
	Goal            nullable[string]  `json:"goal"`
}

// nullable tells an absent field apart from an explicit null.
type nullable[T any] struct {
	Present bool
	Value   *T
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// cleared reports an explicit null.
func (n nullable[T]) cleared() bool {
	return n.Present && n.Value == nil
}

func (req updateProfileRequest) toInput() user.UpdateProfileInput {
	in := user.UpdateProfileInput{
		FullName:          req.FullName,
		PhoneNumber:       req.PhoneNumber,
		Email:             req.Email,
		Sex:               req.Sex,
		PregnantStatus:    req.PregnantStatus,
		LactationStatus:   req.LactationStatus,
		Birthdate:         req.Birthdate,
		Height:            req.Height,
		Weight:            req.Weight,
		TargetWeight:      req.TargetWeight.Value,
		ClearTargetWeight: req.TargetWeight.cleared(),
		ExerciseLevel:     req.ExerciseLevel,
		Goal:              req.Goal.Value,
		ClearGoal:         req.Goal.cleared(),
	}
	if in.Goal != nil && *in.Goal == "" {
		in.Goal, in.ClearGoal = nil, true
	}
	return in
}

type toggleResponse struct {
	Status            bool   `json:"status"`
	Message           string `json:"message"`
	AllowNotification bool   `json:"allow_notification"`
}

// Show handles GET /api/profile/show.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{User: toUserResponse(u)})
}

// Update handles POST /api/profile/update.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{User: toUserResponse(u)})
}

// ToggleNotification handles POST /api/profile/toggle-allow-notification.
func (h *ProfileHandler) ToggleNotification(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.ToggleNotifications(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{
		Status:            true,
		Message:           "notification settings updated",
		AllowNotification: u.AllowNotification,
	})
}

func toUserResponse(u *domain.User) userResponse {
	p := u.Profile
	resp := userResponse{
		ID:                  u.ID.String(),
		FullName:            u.FullName,
		PhoneNumber:         u.PhoneNumber,
		Email:               u.Email,
		Height:              p.HeightCM,
		Weight:              p.WeightKG,
		TargetWeight:        p.TargetWeightKG,
		PregnantStatus:      p.Pregnant,
		LactationStatus:     p.Lactating,
		AllowNotification:   u.AllowNotification,
		RegisterCompletedAt: u.RegisterCompletedAt,
		CreatedAt:           u.CreatedAt,
	}
	if p.Sex != nil {
		resp.Sex = stringPtr(p.Sex.String())
	}
	if p.Birthdate != nil {
		resp.Birthdate = stringPtr(p.Birthdate.String())
	}
	if p.ExerciseLevel != nil {
		resp.ExerciseLevel = stringPtr(p.ExerciseLevel.String())
	}
	if p.Goal != nil {
		resp.Goal = stringPtr(p.Goal.String())
	}
	return resp
}

func stringPtr(s string) *string { return &s }
