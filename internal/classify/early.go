// Package classify decides whether purchase events count as early entries
// relative to token creation time.
package classify

// IsEarlyEntry reports whether an event at eventTime qualifies as an early
// entry into a token created at creationTime. The boundary is inclusive:
// an event exactly windowSeconds after creation still counts.
//
// Events that precede creationTime are treated as not-early rather than an
// error; upstream clock skew is tolerated silently.
func IsEarlyEntry(eventTime, creationTime, windowSeconds uint64) bool {
	if eventTime < creationTime {
		return false
	}
	return eventTime-creationTime <= windowSeconds
}
