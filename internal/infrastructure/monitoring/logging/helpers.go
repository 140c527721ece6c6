package logging

import "time"

// SlowUpstreamThreshold marks upstream calls that deserve a Warn entry even
// when they succeed.
const SlowUpstreamThreshold = 5 * time.Second

// LogUpstreamCall records the outcome of one upstream request.  Failures are
// logged at Debug because callers downgrade them to absent data; slow
// successes are logged at Warn.
func LogUpstreamCall(l Logger, operation string, start time.Time, err error, fields ...Field) {
	elapsed := time.Since(start)
	fields = append(fields,
		String("operation", operation),
		Int64("duration_ms", elapsed.Milliseconds()),
	)
	switch {
	case err != nil:
		l.Debug("upstream call failed", append(fields, Err(err))...)
	case elapsed >= SlowUpstreamThreshold:
		l.Warn("slow upstream call", fields...)
	default:
		l.Debug("upstream call completed", fields...)
	}
}
