package home

import (
	"context"
	"net/url"
)

// Navigation is one call to Navigator.Navigate.
type Navigation struct {
	Path  string     `json:"path"`
	Query url.Values `json:"query,omitempty"`
}

// Outcome is what a screen action produced for the user.
type Outcome struct {
	Alerts     []string    `json:"alerts"`
	Navigation *Navigation `json:"navigation"`

	// Navigations counts Navigate calls; Navigation is the last one.
	Navigations int `json:"-"`
}

// Recorder is a Navigator and Alerter that keeps what it was given until
// Drain is called. Front ends without a real UI render the Outcome instead.
type Recorder struct {
	out Outcome
}

func (r *Recorder) Alert(message string) {
	r.out.Alerts = append(r.out.Alerts, message)
}

func (r *Recorder) Navigate(path string, query url.Values) {
	r.out.Navigation = &Navigation{Path: path, Query: query}
	r.out.Navigations++
}

// Drain returns the recorded outcome and starts a new one.
func (r *Recorder) Drain() Outcome {
	out := r.out
	if out.Alerts == nil {
		out.Alerts = []string{}
	}
	r.out = Outcome{}
	return out
}

// Device describes the client the screen runs on.
type Device struct {
	Native    bool
	PushToken string
}

func (d *Device) IsNative() bool { return d.Native }

func (d *Device) Token(context.Context) (string, error) { return d.PushToken, nil }
