// Package statsview runs a local HTTP server offering runtime statistics
// of the emulator process.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// Address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// starter is implemented by the statsview manager.
type starter interface {
	Start() error
}

// Launch starts the statistics server in a new goroutine.
func Launch(logger *log.Logger) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	launch(logger, statsview.New())
}

func launch(logger *log.Logger, mgr starter) {
	go func() {
		if err := mgr.Start(); err != nil {
			logger.Warn("Stats server stopped", log.Err(err))
		}
	}()

	logger.Info("Stats server available", log.String("url", URL()))
}

// URL returns the address of the statistics page.
func URL() string {
	return "http://" + Address + url
}
