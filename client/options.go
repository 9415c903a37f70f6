package client

// CallOptions is the per-call options bag every operation accepts. Header
// overrides are merged into the outbound request; the Authorization header is
// always taken from the operation's own authorization argument and cannot be
// overridden here.
type CallOptions struct {
	Headers map[string]string
}

// MergeHeaders folds option-bag headers over the operation's own headers.
func MergeHeaders(base map[string]string, opts *CallOptions) map[string]string {
	if opts == nil || len(opts.Headers) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(opts.Headers))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range opts.Headers {
		merged[k] = v
	}
	return merged
}
