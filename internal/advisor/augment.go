package advisor

import (
	"context"

	valve "Armatura/internal/valve"
)

// WarnUnavailable is the single warning reported when the advisory exchange
// fails for any reason (timeout, transport error, bad status, bad payload).
const WarnUnavailable = "advisory service unavailable"

// Augment layers the remote advisory on top of an already-computed engine
// result. The synchronous result is always returned; the advisory can only
// add to it or, at most, override the suitability flag.
func Augment(ctx context.Context, c *Client, p valve.Params, freeText string, base valve.Result) valve.Result {
	advice, err := c.Advise(ctx, AdviceRequest{Params: p, Context: freeText})
	if err != nil {
		base.Warnings = mergeUnique(base.Warnings, []string{WarnUnavailable})
		return base
	}
	base.Warnings = mergeUnique(base.Warnings, advice.Recommendations)
	if advice.SuitableOverride != nil {
		base.Suitable = *advice.SuitableOverride
	}
	return base
}

func mergeUnique(dst, extra []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range extra {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		dst = append(dst, s)
	}
	return dst
}
