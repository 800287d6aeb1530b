package guard

// Layer identifies which detection layer produced a finding. Layer order
// doubles as the tie-break priority when two findings share a severity.
type Layer int

const (
	LayerPattern Layer = iota
	LayerEncoding
	LayerBehavioral
)

func (l Layer) String() string {
	switch l {
	case LayerPattern:
		return "pattern"
	case LayerEncoding:
		return "encoding"
	case LayerBehavioral:
		return "behavioral"
	}
	return "unknown"
}

func (l Layer) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// Finding is one matched rule instance. Fragment carries a truncated view
// of the matched text for audit; secret payloads are never stored whole.
type Finding struct {
	Category string   `json:"category"`
	Pattern  string   `json:"pattern"`
	Severity Severity `json:"severity"`
	Layer    Layer    `json:"layer"`
	Fragment string   `json:"fragment,omitempty"`
}

// Context carries the caller-supplied evaluation context for one message.
type Context struct {
	UserID  string `json:"user_id"`
	IsOwner bool   `json:"is_owner"`
	IsGroup bool   `json:"is_group"`
	ChatID  string `json:"chat_id,omitempty"`
}

// DetectionResult is the single verdict for one evaluated message.
// Findings are ordered most severe first; ties are broken by layer
// priority (pattern > encoding > behavioral) then evaluation order, so
// identical inputs always produce identical output.
type DetectionResult struct {
	Severity        Severity  `json:"severity"`
	Action          Action    `json:"action"`
	Findings        []Finding `json:"findings,omitempty"`
	Reasons         []string  `json:"reasons,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
	RateLimited     bool      `json:"rate_limited,omitempty"`
	LowConfidence   bool      `json:"low_confidence,omitempty"`
	Fingerprint     string    `json:"fingerprint"`
}

// Blocked reports whether the verdict stops the message.
func (r *DetectionResult) Blocked() bool {
	return r.Action == ActionBlock || r.Action == ActionBlockNotify
}
