package sourcing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-sim/internal/simerr"
	"saas-sim/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New()
	return New(st), st
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestCreateEvent(t *testing.T) {
	svc, _ := newTestService(t)

	ev, err := svc.CreateEvent(CreateEventParams{Name: "Laptop RFP", Type: EventTypeRFP})
	require.NoError(t, err)
	assert.Equal(t, 1, ev.ID)
	assert.Equal(t, "RFP", ev.Type)
	assert.Equal(t, "active", ev.Status)

	second, err := svc.CreateEvent(CreateEventParams{Name: "Chair Auction", Type: EventTypeAuction})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateEventValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateEvent(CreateEventParams{Name: "  ", Type: EventTypeRFP})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindValidation))
	assert.Equal(t, "Event name cannot be empty.", err.Error())

	_, err = svc.CreateEvent(CreateEventParams{Name: "x", Type: "rfp"})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindInvalidRequest))
	assert.Equal(t, "Event type must be one of: AUCTION, RFP.", err.Error())
}

func TestGetEvent(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateEvent(CreateEventParams{Name: "Laptop RFP", Type: EventTypeRFP})
	require.NoError(t, err)

	got, err := svc.GetEvent(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetEvent(99)
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindNotFound))
	assert.Equal(t, "Event with ID 99 not found.", err.Error())
}

func TestListEvents(t *testing.T) {
	svc, st := newTestService(t)

	rfp, err := svc.CreateEvent(CreateEventParams{Name: "Laptop RFP", Type: EventTypeRFP})
	require.NoError(t, err)
	auction, err := svc.CreateEvent(CreateEventParams{Name: "Chair Auction", Type: EventTypeAuction})
	require.NoError(t, err)
	st.Events[auction.ID].Status = "closed"

	all := svc.ListEvents(nil)
	require.Len(t, all, 2)
	assert.Equal(t, rfp.ID, all[0].ID)

	byType := svc.ListEvents(&EventFilter{TypeEquals: []string{"RFP"}})
	require.Len(t, byType, 1)
	assert.Equal(t, rfp.ID, byType[0].ID)

	byStatus := svc.ListEvents(&EventFilter{StatusEquals: []string{"closed"}})
	require.Len(t, byStatus, 1)
	assert.Equal(t, auction.ID, byStatus[0].ID)

	byName := svc.ListEvents(&EventFilter{NameContains: strPtr("laptop")})
	require.Len(t, byName, 1)
	assert.Equal(t, rfp.ID, byName[0].ID)

	none := svc.ListEvents(&EventFilter{TypeEquals: []string{"RFP"}, StatusEquals: []string{"closed"}})
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestListEventsUnknownFilterValuesMatchNothing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateEvent(CreateEventParams{Name: "Laptop RFP", Type: EventTypeRFP})
	require.NoError(t, err)

	assert.Empty(t, svc.ListEvents(&EventFilter{TypeEquals: []string{"TENDER"}}))
	assert.Empty(t, svc.ListEvents(&EventFilter{StatusEquals: []string{"archived"}}))
}

func TestUpdateEvent(t *testing.T) {
	svc, _ := newTestService(t)

	ev, err := svc.CreateEvent(CreateEventParams{Name: "Laptop RFP", Type: EventTypeRFP})
	require.NoError(t, err)

	out, err := svc.UpdateEvent(ev.ID, UpdateEventParams{
		ID:     intPtr(ev.ID),
		Name:   strPtr("Laptop and Monitor RFP"),
		Status: strPtr("closed"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Laptop and Monitor RFP", out.Name)
	assert.Equal(t, "closed", out.Status)
	assert.Equal(t, EventTypeRFP, out.Type)

	stored, err := svc.GetEvent(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop and Monitor RFP", stored.Name)
}

func TestUpdateEventUnknownYieldsNil(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.UpdateEvent(99, UpdateEventParams{Name: strPtr("Ghost")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdateEventErrors(t *testing.T) {
	svc, _ := newTestService(t)

	ev, err := svc.CreateEvent(CreateEventParams{Name: "Laptop RFP", Type: EventTypeRFP})
	require.NoError(t, err)

	_, err = svc.UpdateEvent(ev.ID, UpdateEventParams{ID: intPtr(ev.ID + 1)})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindInvalidRequest))
	assert.Equal(t, "The 'id' in data must match the 'id' parameter.", err.Error())

	_, err = svc.UpdateEvent(ev.ID, UpdateEventParams{Name: strPtr("  ")})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindValidation))
	assert.Equal(t, "Event name cannot be empty.", err.Error())

	_, err = svc.UpdateEvent(ev.ID, UpdateEventParams{Type: strPtr("TENDER")})
	require.Error(t, err)
	assert.Equal(t, "Event type must be one of: AUCTION, RFP.", err.Error())

	_, err = svc.UpdateEvent(ev.ID, UpdateEventParams{Status: strPtr(" ")})
	require.Error(t, err)
	assert.Equal(t, "Event status cannot be empty.", err.Error())

	stored, err := svc.GetEvent(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop RFP", stored.Name)
}

func TestDeleteEvent(t *testing.T) {
	svc, _ := newTestService(t)

	ev, err := svc.CreateEvent(CreateEventParams{Name: "Laptop RFP", Type: EventTypeRFP})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ev.ID))

	_, err = svc.GetEvent(ev.ID)
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindNotFound))
}

func TestDeleteEventErrors(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteEvent(0)
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindValidation))
	assert.Equal(t, "Event ID must be a positive integer.", err.Error())

	err = svc.DeleteEvent(99)
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindNotFound))
	assert.Equal(t, "Event with ID 99 not found.", err.Error())
}
