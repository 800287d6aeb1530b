// Package guard implements the layered message-classification engine.
// A message flows through rate limiting, normalization, pattern scanning,
// encoding probing and behavioral analysis, and the decision engine folds
// all partial findings into a single severity-graded verdict.
package guard

import "fmt"

// Severity is the ordered risk tier assigned to an evaluated message.
type Severity int

const (
	SeveritySafe Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeveritySafe:     "SAFE",
	SeverityLow:      "LOW",
	SeverityMedium:   "MEDIUM",
	SeverityHigh:     "HIGH",
	SeverityCritical: "CRITICAL",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalJSON emits the severity name rather than its numeric value so log
// records stay readable without a decoder table.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ParseSeverity maps a configuration key ("low", "HIGH", ...) to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "safe", "SAFE":
		return SeveritySafe, nil
	case "low", "LOW":
		return SeverityLow, nil
	case "medium", "MEDIUM":
		return SeverityMedium, nil
	case "high", "HIGH":
		return SeverityHigh, nil
	case "critical", "CRITICAL":
		return SeverityCritical, nil
	}
	return SeveritySafe, fmt.Errorf("unknown severity %q", name)
}

// Action is the enforcement directive derived from severity. It is never
// set independently: the decision engine computes it from the configured
// severity->action table plus context adjustments.
type Action string

const (
	ActionAllow       Action = "allow"
	ActionLog         Action = "log"
	ActionWarn        Action = "warn"
	ActionBlock       Action = "block"
	ActionBlockNotify Action = "block_notify"
)

// actionRank orders actions by restrictiveness for comparisons such as
// "owner context never yields a stricter action".
var actionRank = map[Action]int{
	ActionAllow:       0,
	ActionLog:         1,
	ActionWarn:        2,
	ActionBlock:       3,
	ActionBlockNotify: 4,
}

// Rank returns the restrictiveness order of the action (allow lowest).
func (a Action) Rank() int { return actionRank[a] }

// ParseAction validates an action name from configuration.
func ParseAction(name string) (Action, error) {
	switch Action(name) {
	case ActionAllow, ActionLog, ActionWarn, ActionBlock, ActionBlockNotify:
		return Action(name), nil
	}
	return "", fmt.Errorf("unknown action %q", name)
}

// Sensitivity selects how aggressively borderline findings are graded.
type Sensitivity int

const (
	SensitivityLow Sensitivity = iota
	SensitivityMedium
	SensitivityHigh
	SensitivityParanoid
)

func (s Sensitivity) String() string {
	switch s {
	case SensitivityLow:
		return "low"
	case SensitivityMedium:
		return "medium"
	case SensitivityHigh:
		return "high"
	case SensitivityParanoid:
		return "paranoid"
	}
	return fmt.Sprintf("Sensitivity(%d)", int(s))
}

// ParseSensitivity maps a configuration value to a Sensitivity tier.
func ParseSensitivity(name string) (Sensitivity, error) {
	switch name {
	case "low":
		return SensitivityLow, nil
	case "", "medium":
		return SensitivityMedium, nil
	case "high":
		return SensitivityHigh, nil
	case "paranoid":
		return SensitivityParanoid, nil
	}
	return SensitivityMedium, fmt.Errorf("unknown sensitivity %q", name)
}

// Bump raises the tier by one step, used for group-context hardening.
func (s Sensitivity) Bump() Sensitivity {
	if s >= SensitivityParanoid {
		return SensitivityParanoid
	}
	return s + 1
}
