package validation

// Outcome messages reported to callers after a decision is applied.
const (
	OutcomeStepApproved     = "Step approved"
	OutcomeDocumentApproved = "Document approved"
	OutcomeDocumentRejected = "Document rejected"
)

// Decision is the exact mutation set produced by evaluating an approve
// or reject request against a flow's current state. It is computed
// before any write so a request either fully applies or fails with no
// side effects.
type Decision struct {
	// ApproveThrough marks every step with order <= this value Approved.
	// Zero when no cascade applies (reject path).
	ApproveThrough int

	// RejectOrder marks exactly this step Rejected. Zero on the approve path.
	RejectOrder int

	// ReasonOrder is the step that receives the caller's reason text.
	ReasonOrder int
	Reason      string

	// Resolved reports that the flow reached a terminal outcome: the
	// document takes DocumentStatus and the flow is disabled.
	Resolved       bool
	DocumentStatus Status

	Outcome string
}

// DecideApprove evaluates an approval request. The matched step is
// located by approver identity across all steps regardless of status.
// Approving a step cascades: every step at or below the matched order is
// marked Approved, and approving the highest-ordered step resolves the
// document as Approved.
func DecideApprove(flow *Flow, steps []Step, approverID, reason string) (Decision, error) {
	if flow == nil || !flow.Enabled {
		return Decision{}, ErrFlowNotActive
	}

	step, err := matchStep(steps, approverID)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{
		ApproveThrough: step.Order,
		ReasonOrder:    step.Order,
		Reason:         reason,
		Outcome:        OutcomeStepApproved,
	}

	if step.Order == len(steps) {
		d.Resolved = true
		d.DocumentStatus = StatusApproved
		d.Outcome = OutcomeDocumentApproved
	}
	return d, nil
}

// DecideReject evaluates a rejection request. Rejection is a hard stop:
// only the matched step is marked Rejected, the document resolves as
// Rejected, and the flow is disabled. A reason is mandatory.
func DecideReject(flow *Flow, steps []Step, approverID, reason string) (Decision, error) {
	if flow == nil || !flow.Enabled {
		return Decision{}, ErrFlowNotActive
	}
	if reason == "" {
		return Decision{}, ErrReasonRequired
	}

	step, err := matchStep(steps, approverID)
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		RejectOrder:    step.Order,
		ReasonOrder:    step.Order,
		Reason:         reason,
		Resolved:       true,
		DocumentStatus: StatusRejected,
		Outcome:        OutcomeDocumentRejected,
	}, nil
}

// matchStep locates the step assigned to the approver. The lookup spans
// all steps, not just pending ones, so a resubmission after a decision
// reports StepNotPending rather than NotAuthorized.
func matchStep(steps []Step, approverID string) (*Step, error) {
	for i := range steps {
		if steps[i].ApproverID == approverID {
			if steps[i].Status != StatusPending {
				return nil, ErrStepNotPending
			}
			return &steps[i], nil
		}
	}
	return nil, ErrNotAuthorized
}
