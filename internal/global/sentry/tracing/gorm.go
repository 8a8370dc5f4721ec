package tracing

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin opens a span around every gorm callback chain.
type GormTracingPlugin struct {
	system        string        // db.system span attribute
	slowThreshold time.Duration // faster statements are not sent, 0 sends all
}

func NewGormTracingPlugin(system string, slowMs int) *GormTracingPlugin {
	return &GormTracingPlugin{
		system:        system,
		slowThreshold: time.Duration(slowMs) * time.Millisecond,
	}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	name := func(stage, op string) string { return callbackPrefix + ":" + stage + "_" + op }
	return errors.Join(
		cb.Create().Before("gorm:create").Register(name("before", "create"), p.beforeCallback("db.sql.create")),
		cb.Query().Before("gorm:query").Register(name("before", "query"), p.beforeCallback("db.sql.query")),
		cb.Update().Before("gorm:update").Register(name("before", "update"), p.beforeCallback("db.sql.update")),
		cb.Delete().Before("gorm:delete").Register(name("before", "delete"), p.beforeCallback("db.sql.delete")),
		cb.Row().Before("gorm:row").Register(name("before", "row"), p.beforeCallback("db.sql.row")),
		cb.Raw().Before("gorm:raw").Register(name("before", "raw"), p.beforeCallback("db.sql.raw")),
		cb.Create().After("gorm:create").Register(name("after", "create"), p.afterCallback),
		cb.Query().After("gorm:query").Register(name("after", "query"), p.afterCallback),
		cb.Update().After("gorm:update").Register(name("after", "update"), p.afterCallback),
		cb.Delete().After("gorm:delete").Register(name("after", "delete"), p.afterCallback),
		cb.Row().After("gorm:row").Register(name("after", "row"), p.afterCallback),
		cb.Raw().After("gorm:raw").Register(name("after", "raw"), p.afterCallback),
	)
}

func (p *GormTracingPlugin) beforeCallback(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}

		db.InstanceSet(gormStartKey, time.Now())

		parentSpan := sentry.SpanFromContext(db.Statement.Context)
		if parentSpan == nil {
			return
		}

		span := parentSpan.StartChild(operation)
		span.Description = p.getStatementDescription(db)
		span.SetData("db.system", p.system)

		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) afterCallback(db *gorm.DB) {
	if db.Statement == nil {
		return
	}

	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	startTime, ok := startVal.(time.Time)
	if !ok {
		return
	}

	elapsed := time.Since(startTime)

	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	if p.slowThreshold > 0 && elapsed < p.slowThreshold {
		// sentry-go cannot drop a started span, unsampling keeps it out of the envelope
		span.Sampled = sentry.SampledFalse
	}

	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}

	span.Finish()
}

// getStatementDescription uses the table name, never the SQL, to keep cardinality low and
// values out of Sentry.
func (p *GormTracingPlugin) getStatementDescription(db *gorm.DB) string {
	if db.Statement == nil {
		return "unknown"
	}
	table := db.Statement.Table
	if table == "" {
		return "unknown"
	}
	return table
}
