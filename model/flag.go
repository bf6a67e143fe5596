package model

type Flags struct {
	// Subscription limits the run to one subscription ID. Empty means every
	// subscription the credential can reach.
	Subscription string

	// Output is the path of the CSV report
	Output string

	// IncludeScaleUp keeps ScaleUp rows in the actionable output instead of
	// rewriting them to NoChange
	IncludeScaleUp bool

	// DelayMS is the pause between outbound metric/cost calls
	DelayMS int

	// MaxRetries caps attempts per billing call when throttled
	MaxRetries int
}
