package domain

// TriggerType is the psychological category of a customer trigger.
type TriggerType string

// Trigger type constants.
const (
	TriggerPainPoint   TriggerType = "pain_point"
	TriggerDesire      TriggerType = "desire"
	TriggerFear        TriggerType = "fear"
	TriggerAspiration  TriggerType = "aspiration"
	TriggerFrustration TriggerType = "frustration"
)

// CustomerTrigger is a psychologically-typed customer statement derived
// deterministically from a BrandProfile field. Intensity is 0-100.
type CustomerTrigger struct {
	Statement string      `json:"statement"`
	Type      TriggerType `json:"type"`
	Source    string      `json:"source"`
	Intensity int         `json:"intensity"`
}

// Trend is an externally-fetched market trend description to be matched
// against customer triggers. PrimaryTrigger is the trend's declared primary
// psychological trigger; Validated marks external validation; Priority is
// supplied by the fetch layer and used as the final ordering tie-break.
type Trend struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	PrimaryTrigger string `json:"primary_trigger,omitempty"`
	Validated      bool   `json:"validated"`
	Priority       int    `json:"priority"`
}

// TriggerMatch scores the affinity between one trend and one trigger.
// Strength is an integer in [0,100]; it is exactly 0 when there are no
// connecting keywords.
type TriggerMatch struct {
	Trigger            CustomerTrigger `json:"trigger"`
	Strength           int             `json:"strength"`
	ConnectingKeywords []string        `json:"connecting_keywords"`
}

// TrendMatchResult is one trend with its retained trigger matches and
// generated content angles. ContentReady means the single best match is at
// or above the content threshold.
type TrendMatchResult struct {
	Trend         Trend          `json:"trend"`
	Matches       []TriggerMatch `json:"matches"`
	BestStrength  int            `json:"best_strength"`
	ContentReady  bool           `json:"content_ready"`
	ContentAngles []string       `json:"content_angles,omitempty"`
}
