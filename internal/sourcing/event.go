package sourcing

import (
	"sort"
	"strings"

	"saas-sim/internal/model"
	"saas-sim/internal/simerr"
)

// CreateEventParams names a new sourcing event.
type CreateEventParams struct {
	Name string
	Type string
}

func (s *Service) CreateEvent(p CreateEventParams) (model.SourcingEvent, error) {
	var empty model.SourcingEvent

	if strings.TrimSpace(p.Name) == "" {
		return empty, simerr.Validation("Event name cannot be empty.")
	}
	if p.Type != EventTypeRFP && p.Type != EventTypeAuction {
		return empty, simerr.InvalidRequest("Event type must be one of: AUCTION, RFP.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	ev := &model.SourcingEvent{
		ID:     s.store.NextEvent(),
		Type:   p.Type,
		Name:   p.Name,
		Status: "active",
	}
	s.store.Events[ev.ID] = ev
	return *ev, nil
}

func (s *Service) GetEvent(id int) (model.SourcingEvent, error) {
	s.store.RLock()
	defer s.store.RUnlock()

	ev, ok := s.store.Events[id]
	if !ok {
		return model.SourcingEvent{}, simerr.NotFound("Event with ID %d not found.", id)
	}
	return *ev, nil
}

// UpdateEventParams carries the fields a patch may change. Nil fields
// stay untouched. ID, when present, must repeat the addressed event's
// id.
type UpdateEventParams struct {
	ID     *int
	Name   *string
	Type   *string
	Status *string
}

// UpdateEvent applies a partial update. An unknown event yields a nil
// result rather than an error.
func (s *Service) UpdateEvent(id int, p UpdateEventParams) (*model.SourcingEvent, error) {
	if p.ID != nil && *p.ID != id {
		return nil, simerr.InvalidRequest("The 'id' in data must match the 'id' parameter.")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, simerr.Validation("Event name cannot be empty.")
	}
	if p.Type != nil && *p.Type != EventTypeRFP && *p.Type != EventTypeAuction {
		return nil, simerr.InvalidRequest("Event type must be one of: AUCTION, RFP.")
	}
	if p.Status != nil && strings.TrimSpace(*p.Status) == "" {
		return nil, simerr.Validation("Event status cannot be empty.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	ev, ok := s.store.Events[id]
	if !ok {
		return nil, nil
	}
	if p.Name != nil {
		ev.Name = *p.Name
	}
	if p.Type != nil {
		ev.Type = *p.Type
	}
	if p.Status != nil {
		ev.Status = *p.Status
	}
	out := *ev
	return &out, nil
}

func (s *Service) DeleteEvent(id int) error {
	if id <= 0 {
		return simerr.Validation("Event ID must be a positive integer.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.store.Events[id]; !ok {
		return simerr.NotFound("Event with ID %d not found.", id)
	}
	delete(s.store.Events, id)
	return nil
}

// EventFilter narrows the event listing. All conditions are AND-composed.
type EventFilter struct {
	TypeEquals   []string
	StatusEquals []string
	NameContains *string
}

func (s *Service) ListEvents(filter *EventFilter) []model.SourcingEvent {
	s.store.RLock()
	defer s.store.RUnlock()

	var out []model.SourcingEvent
	for _, ev := range s.store.Events {
		if filter != nil {
			if len(filter.TypeEquals) > 0 && !contains(filter.TypeEquals, ev.Type) {
				continue
			}
			if len(filter.StatusEquals) > 0 && !contains(filter.StatusEquals, ev.Status) {
				continue
			}
			if filter.NameContains != nil &&
				!strings.Contains(strings.ToLower(ev.Name), strings.ToLower(*filter.NameContains)) {
				continue
			}
		}
		out = append(out, *ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if out == nil {
		out = []model.SourcingEvent{}
	}
	return out
}

func contains(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
