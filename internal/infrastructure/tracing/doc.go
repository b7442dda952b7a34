/*
Package tracing records one span per HTTP request and lets handlers open
child spans for the work they do.

Trace and span IDs are prefixed ULIDs from the id package. A caller that
sends X-Trace-ID (and optionally X-Span-ID) has its trace continued; a
malformed value is ignored and a fresh trace is started. The response always
echoes X-Trace-ID, so a widget can match its request to backend log lines.

Finished spans go through a buffered channel to a single logging goroutine.
When the buffer is full the span is dropped and a warning is logged; request
handling never blocks on tracing. Successful spans log at debug, failed ones
at error.

	tracer := tracing.New("mathdev-backend", logger)
	defer tracer.Close()
	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "trig.evaluate")
	span.SetTag("angle", raw)
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
