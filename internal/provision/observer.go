package provision

import (
	"fmt"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Observer receives progress notifications from the pipeline.
type Observer interface {
	Printf(format string, v ...interface{})
}

// logrObserver adapts a logr.Logger to the Observer interface.
type logrObserver struct {
	log logr.Logger
}

// NewLogrObserver returns an Observer writing through the given logger.
func NewLogrObserver(logger logr.Logger) Observer {
	return &logrObserver{log: logger}
}

// Printf implements Observer.
func (o *logrObserver) Printf(format string, v ...interface{}) {
	o.log.Info(fmt.Sprintf(format, v...))
}

// NewConsoleObserver returns the default Observer, logging to the standard
// logger.
func NewConsoleObserver() Observer {
	return NewLogrObserver(funcr.New(func(_, args string) {
		log.Print(args)
	}, funcr.Options{}))
}
