package webserver

import (
	"github.com/mtorres82/tensio/internal/webserver/controller/backup"
	"github.com/mtorres82/tensio/internal/webserver/controller/chart"
	"github.com/mtorres82/tensio/internal/webserver/controller/reading"
	"golang.org/x/text/message"
)

const recentReadingsLimit = 25

type Controllers struct {
	Readings *reading.Controller
	Backup   *backup.Controller
	Charts   *chart.Controller
}

func SetupControllers(cfg Config, repo Repository, printers map[string]*message.Printer) Controllers {
	readingsCfg := reading.Config{
		RollingWindow: cfg.RollingWindow,
		RecentLimit:   recentReadingsLimit,
	}

	chartsCfg := chart.Config{
		RollingWindow: cfg.RollingWindow,
	}

	return Controllers{
		Readings: reading.NewController(repo, readingsCfg),
		Backup:   backup.NewController(repo, printers),
		Charts:   chart.NewController(repo, chartsCfg),
	}
}
