package reading

import (
	"github.com/mtorres82/tensio/internal/bp"
)

// Repository is the slice of the store this controller needs.
type Repository interface {
	Load() ([]bp.Reading, int, error)
	Append(r bp.Reading) error
}

type Config struct {
	RollingWindow int
	RecentLimit   int
}

type Controller struct {
	repo   Repository
	config Config
}

func NewController(repo Repository, cfg Config) *Controller {
	return &Controller{
		repo:   repo,
		config: cfg,
	}
}

// FormValues carries raw form input back into the template when
// validation fails, so the user doesn't lose what they typed.
type FormValues struct {
	Systolic  string
	Diastolic string
	Pulse     string
	Notes     string
	Timestamp string
}
