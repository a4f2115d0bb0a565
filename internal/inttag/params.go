// SPDX-License-Identifier: MPL-2.0

package inttag

// Params is the keyed form of a Request used by configuration-driven task
// runners. Field names match the task file keys. A nil StartTime, Increment
// or RepeatCount means the key was absent and the default applies.
type Params struct {
	Input       string   `json:"input" mapstructure:"input"`
	Output      string   `json:"output" mapstructure:"output"`
	StartTime   *float64 `json:"starttime,omitempty" mapstructure:"starttime"`
	Increment   *float64 `json:"increment,omitempty" mapstructure:"increment"`
	RepeatCount *int     `json:"rcount,omitempty" mapstructure:"rcount"`
	Verbose     bool     `json:"verbose" mapstructure:"verbose"`
	HighRes     bool     `json:"highres" mapstructure:"highres"`
	AllEvents   bool     `json:"allevents" mapstructure:"allevents"`
}

// Request converts p. Validation is left to Request.Validate so both entry
// points enforce the same rules.
func (p Params) Request() Request {
	req := NewRequest(p.Input, p.Output)
	if p.StartTime != nil {
		req.StartTime = SecondsOf(*p.StartTime)
	}
	if p.Increment != nil {
		req.Increment = SecondsOf(*p.Increment)
	}
	if p.RepeatCount != nil {
		req.RepeatCount = *p.RepeatCount
	}
	req.Verbose = p.Verbose
	req.HighRes = p.HighRes
	req.AllEvents = p.AllEvents
	return req
}
