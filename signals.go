package validino

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for validation events.
var (
	SignalSchemaCreated  = capitan.NewSignal("validino.schema.created", "Schema constructed")
	SignalSchemaStart    = capitan.NewSignal("validino.schema.start", "Schema validation beginning")
	SignalSchemaComplete = capitan.NewSignal("validino.schema.complete", "Schema validation finished")
	SignalDecodeFailed   = capitan.NewSignal("validino.decode.failed", "Payload could not be decoded")
)

// Keys for typed event data.
var (
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyGroupCount  = capitan.NewIntKey("group_count")
	KeyErrorCount  = capitan.NewIntKey("error_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
)

// emitSchemaCreated emits an event when a schema is constructed.
func emitSchemaCreated(ctx context.Context, fields, groups int) {
	capitan.Emit(ctx, SignalSchemaCreated,
		KeyFieldCount.Field(fields),
		KeyGroupCount.Field(groups),
	)
}

// emitSchemaStart emits an event when schema validation begins.
func emitSchemaStart(ctx context.Context, fields int) {
	capitan.Emit(ctx, SignalSchemaStart,
		KeyFieldCount.Field(fields),
	)
}

// emitSchemaComplete emits an event when schema validation finishes.
// Failures, validation or otherwise, are emitted at error severity.
func emitSchemaComplete(ctx context.Context, fieldCount, errorCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFieldCount.Field(fieldCount),
		KeyErrorCount.Field(errorCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSchemaComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSchemaComplete, fields...)
	}
}

// emitDecodeFailed emits an event when a codec cannot decode a payload.
func emitDecodeFailed(ctx context.Context, contentType string, size int, err error) {
	capitan.Error(ctx, SignalDecodeFailed,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyError.Field(err),
	)
}
