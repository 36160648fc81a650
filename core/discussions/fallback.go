package discussions

import "context"

// Step is one search attempt
type Step func(ctx context.Context) Outcome

// Fallback composes steps into a chain that runs them strictly in order and
// stops at the first Found. Empty, Failed and Skipped all fall through.
// When every step falls through, the last step's outcome is returned.
// A chain with no steps yields NoModes.
func Fallback(steps ...Step) Step {
	return func(ctx context.Context) Outcome {
		if len(steps) == 0 {
			return NoModes()
		}

		var last Outcome
		for _, step := range steps {
			last = step(ctx)
			if last.IsFound() {
				return last
			}
		}
		return last
	}
}
