package clone

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for clone events. They are only emitted when the Cloner was
// built with [WithSignals].
var (
	SignalCloneStart    = capitan.NewSignal("clone.start", "Clone operation beginning")
	SignalCloneComplete = capitan.NewSignal("clone.complete", "Clone operation finished")
)

// Keys for typed event data.
var (
	KeyKind     = capitan.NewStringKey("kind")
	KeyNodes    = capitan.NewIntKey("nodes")
	KeyDepth    = capitan.NewIntKey("depth")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

func emitCloneStart(ctx context.Context, kind string) {
	capitan.Emit(ctx, SignalCloneStart,
		KeyKind.Field(kind),
	)
}

func emitCloneComplete(ctx context.Context, kind string, st stats, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyKind.Field(kind),
		KeyNodes.Field(st.nodes),
		KeyDepth.Field(st.depth),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCloneComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCloneComplete, fields...)
	}
}
