package model

// Status is the current fulfilment stage of an order.
//
// The workflow is advisory rather than enforced: every status is reachable
// from every other status through an explicit user action, so mis-set
// statuses can always be corrected. Do not add a transition table.
type Status string

const (
	StatusPending       Status = "pending"
	StatusProformaSent  Status = "proforma_sent"
	StatusPayment       Status = "payment"
	StatusShipped       Status = "shipped"
	StatusShippedUnpaid Status = "shipped_unpaid"
)

// legacyStatusCompleted is the terminal tag used before the workflow grew
// its current five stages. Records carrying it migrate forward to shipped.
const legacyStatusCompleted = "completed"

// Statuses lists the workflow stages in forward progression order.
var Statuses = []Status{
	StatusPending,
	StatusProformaSent,
	StatusPayment,
	StatusShipped,
	StatusShippedUnpaid,
}

// Tone classifies how a status badge is presented. Purely visual.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneCaution  Tone = "caution"
	ToneProgress Tone = "progress"
	ToneSuccess  Tone = "success"
	ToneAlert    Tone = "alert"
)

var statusLabels = map[Status]string{
	StatusPending:       "Εκκρεμής",
	StatusProformaSent:  "Αποστ. Προτιμολογίου",
	StatusPayment:       "Πληρωμή",
	StatusShipped:       "Αποστολή",
	StatusShippedUnpaid: "Αποστολή χωρίς εξόφληση",
}

var statusTones = map[Status]Tone{
	StatusPending:       ToneCaution,
	StatusProformaSent:  ToneProgress,
	StatusPayment:       ToneProgress,
	StatusShipped:       ToneSuccess,
	StatusShippedUnpaid: ToneAlert,
}

// Valid reports whether s is one of the five current workflow tags.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the localised display label for the status. Unknown tags
// render as themselves so nothing is ever hidden.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Tone returns the visual classification used for the status badge.
func (s Status) Tone() Tone {
	if tone, ok := statusTones[s]; ok {
		return tone
	}
	return ToneNeutral
}

// NormalizeStatus maps a raw persisted status value onto the current
// workflow. Current tags are kept as-is, the legacy "completed" tag moves
// forward to shipped, and anything else defaults to pending. The mapping is
// a one-way forward-compatibility shim; there is no reverse mapping.
func NormalizeStatus(raw string) Status {
	s := Status(raw)
	if s.Valid() {
		return s
	}
	if raw == legacyStatusCompleted {
		return StatusShipped
	}
	return StatusPending
}
