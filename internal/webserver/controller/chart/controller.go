package chart

import (
	"github.com/mtorres82/tensio/internal/bp"
)

// Repository is the slice of the store this controller needs.
type Repository interface {
	Load() ([]bp.Reading, int, error)
}

type Config struct {
	RollingWindow int
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
