package backup

import (
	"io"

	"golang.org/x/text/message"
)

// Repository is the slice of the store this controller needs.
type Repository interface {
	Export() ([]byte, error)
	Restore(upload io.Reader) (added, total int, err error)
	Clear() error
}

type Controller struct {
	repo     Repository
	printers map[string]*message.Printer
}

func NewController(repo Repository, printers map[string]*message.Printer) *Controller {
	return &Controller{
		repo:     repo,
		printers: printers,
	}
}
