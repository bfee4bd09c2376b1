package payments

import (
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

// ListDisputesParams filters the dispute list.
type ListDisputesParams struct {
	Charge        *string
	PaymentIntent *string
	Limit         *int
}

func (s *Service) ListDisputes(p ListDisputesParams) (model.List[model.Dispute], error) {
	var empty model.List[model.Dispute]

	limit, err := validate.LimitBetween(p.Limit)
	if err != nil {
		return empty, err
	}

	s.store.RLock()
	defer s.store.RUnlock()

	var matched []*model.Dispute
	for _, d := range s.store.Disputes {
		if p.Charge != nil && d.Charge != *p.Charge {
			continue
		}
		if p.PaymentIntent != nil {
			if d.PaymentIntent == nil || *d.PaymentIntent != *p.PaymentIntent {
				continue
			}
		}
		matched = append(matched, d)
	}

	sorted := sortedByCreatedDesc(matched,
		func(d *model.Dispute) int64 { return d.Created },
		func(d *model.Dispute) string { return d.ID })

	win, hasMore := page.Window(sorted, limit)
	out := make([]model.Dispute, 0, len(win))
	for _, d := range win {
		out = append(out, *d)
	}
	return newList(out, hasMore), nil
}

// evidenceFields are the evidence keys update_dispute may change.
// cancellation_rebuttal is stored on the record but never updated here.
var evidenceFields = map[string]struct{}{
	"cancellation_policy_disclosure": {},
	"duplicate_charge_explanation":   {},
	"uncategorized_text":             {},
}

// UpdateDisputeParams carries the evidence payload as decoded JSON so
// that explicit nulls can be told apart from absent keys.
type UpdateDisputeParams struct {
	Dispute  string
	Evidence map[string]any
	Submit   bool
}

func (s *Service) UpdateDispute(p UpdateDisputeParams) (model.Dispute, error) {
	var empty model.Dispute

	fields := make(map[string]*string)
	for key, raw := range p.Evidence {
		if _, ok := evidenceFields[key]; !ok {
			continue
		}
		if raw == nil {
			fields[key] = nil
			continue
		}
		str, ok := raw.(string)
		if !ok {
			return empty, simerr.InvalidRequest("Invalid evidence structure: Field '%s': Input should be a valid string", key)
		}
		v := str
		fields[key] = &v
	}

	s.store.Lock()
	defer s.store.Unlock()

	d, ok := s.store.Disputes[p.Dispute]
	if !ok {
		return empty, simerr.NotFound("Dispute with ID '%s' not found.", p.Dispute)
	}
	switch d.Status {
	case "closed", "won", "lost":
		return empty, simerr.InvalidRequest("Dispute '%s' cannot be updated because its status is '%s'.", d.ID, d.Status)
	}

	for key, val := range fields {
		switch key {
		case "cancellation_policy_disclosure":
			d.Evidence.CancellationPolicyDisclosure = val
		case "duplicate_charge_explanation":
			d.Evidence.DuplicateChargeExplanation = val
		case "uncategorized_text":
			d.Evidence.UncategorizedText = val
		}
	}

	// Submission only moves the dispute under review when this call
	// actually carried evidence. Staged evidence from earlier calls
	// does not count.
	if p.Submit && len(p.Evidence) > 0 && d.Status == "warning_needs_response" {
		d.Status = "under_review"
	}

	return *d, nil
}
