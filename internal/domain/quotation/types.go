package quotation

type Status string

const (
	StatusPending  Status = "pending"
	StatusSent     Status = "sent"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsAnswered reports whether the client has responded.
func (s Status) IsAnswered() bool {
	return s == StatusApproved || s == StatusRejected
}

type ServiceType string

const (
	ServicePermitAcquisition ServiceType = "permit_acquisition"
	ServiceMonitoring        ServiceType = "monitoring"
)

func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	switch st {
	case ServicePermitAcquisition, ServiceMonitoring:
		return st, nil
	default:
		return "", ErrInvalidServiceType
	}
}

func (s ServiceType) String() string { return string(s) }

// Label is the human-readable form used in documents.
func (s ServiceType) Label() string {
	switch s {
	case ServicePermitAcquisition:
		return "Permit Acquisition"
	case ServiceMonitoring:
		return "Monitoring"
	default:
		return string(s)
	}
}

// Action is a client's answer to a sent quotation.
type Action string

const (
	ActionApprove Action = "approve"
	ActionDecline Action = "decline"
)

func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionApprove, ActionDecline:
		return a, nil
	default:
		return "", ErrInvalidAction
	}
}

func (a Action) String() string { return string(a) }

// Outcome is the status an action leads to.
func (a Action) Outcome() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}
