package morph

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for morph events.
var (
	SignalMarshalStart       = capitan.NewSignal("morph.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete    = capitan.NewSignal("morph.marshal.complete", "Marshal operation finished")
	SignalUnmarshalStart     = capitan.NewSignal("morph.unmarshal.start", "Unmarshal operation beginning")
	SignalUnmarshalComplete  = capitan.NewSignal("morph.unmarshal.complete", "Unmarshal operation finished")
	SignalStrategyRegistered = capitan.NewSignal("morph.strategy.registered", "Named strategy registered")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyStrategy    = capitan.NewStringKey("strategy")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitMarshalStart emits an event when marshal begins.
func emitMarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitMarshalComplete emits an event when marshal finishes.
func emitMarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

// emitUnmarshalStart emits an event when unmarshal begins.
func emitUnmarshalStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalUnmarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitUnmarshalComplete emits an event when unmarshal finishes.
func emitUnmarshalComplete(ctx context.Context, contentType, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, fields...)
	}
}

// emitStrategyRegistered emits an event when a named strategy is registered.
func emitStrategyRegistered(ctx context.Context, strategy, typeName string) {
	capitan.Emit(ctx, SignalStrategyRegistered,
		KeyStrategy.Field(strategy),
		KeyTypeName.Field(typeName),
	)
}
