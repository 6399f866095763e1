// pkg/spartan_io/context.go

package spartan_io

import (
	"context"
	"runtime"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-command context, scoped logger and timing
// shared by every CLI handler.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Command    string
	Component  string
	Attributes map[string]string
}

// NewContext builds a RuntimeContext with a logger scoped to the calling
// command.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	if ctx == nil {
		ctx = context.Background()
	}

	comp, action := resolveCallContext(3)
	log := zap.L().With(
		zap.String("component", comp),
		zap.String("action", action),
		zap.String("command", cmdName),
	).Named(comp)

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        log,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Component:  comp,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the command outcome with its duration.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)
	if *errPtr == nil {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
		return
	}
	rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
}

func resolveCallContext(skip int) (component, action string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown"
	}
	parts := strings.Split(file, "/")
	component = parts[len(parts)-2]
	if fn := runtime.FuncForPC(pc); fn != nil {
		fields := strings.Split(fn.Name(), ".")
		action = fields[len(fields)-1]
	} else {
		action = "unknown"
	}
	return
}
