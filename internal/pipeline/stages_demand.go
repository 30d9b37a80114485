package pipeline

import "fmt"

// demandScan (stage 1) turns the day's news counts into demand events, one
// per theme in the product universe. Ten stories saturate the signal.
func (r *Runner) demandScan(st *State) {
	events := make([]DemandEvent, 0, len(st.Themes))
	for _, theme := range st.Themes {
		count, ok := r.news.Count(st.Date, st.Product, theme)
		reason := "no news for theme"
		if ok {
			reason = fmt.Sprintf("news_count=%d", int(count))
		} else {
			count = 0
		}
		strength := count / 10
		if strength > 1 {
			strength = 1
		}
		events = append(events, DemandEvent{Theme: theme, SignalStrength: strength, Reason: reason})
	}
	st.Events = events
}

// demandQuality (stage 2) compares each signal against the demand floor.
// The signal strength doubles as the quality score.
func (r *Runner) demandQuality(st *State) {
	minSignal := st.Thresholds.DemandSignalMin
	quality := make([]DemandQuality, 0, len(st.Events))
	for _, ev := range st.Events {
		passed := ev.SignalStrength >= minSignal
		reason := "demand signal below threshold"
		if passed {
			reason = "demand signal meets threshold"
		}
		quality = append(quality, DemandQuality{
			Theme:        ev.Theme,
			QualityScore: ev.SignalStrength,
			Passed:       passed,
			Reason:       reason,
		})
	}
	st.Quality = quality
}
