package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-sim/internal/simerr"
)

func TestListDisputes(t *testing.T) {
	svc, st := newTestService(t)

	old := seedDispute(st, "needs_response", 10)
	recent := seedDispute(st, "warning_needs_response", 20)

	list, err := svc.ListDisputes(ListDisputesParams{})
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, recent.ID, list.Data[0].ID)
	assert.Equal(t, old.ID, list.Data[1].ID)
}

func TestListDisputesFilters(t *testing.T) {
	svc, st := newTestService(t)

	byCharge := seedDispute(st, "needs_response", 10)
	byIntent := seedDispute(st, "needs_response", 20)
	byIntent.PaymentIntent = strPtr("pi_target")
	seedDispute(st, "needs_response", 30)

	list, err := svc.ListDisputes(ListDisputesParams{Charge: &byCharge.Charge})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, byCharge.ID, list.Data[0].ID)

	list, err = svc.ListDisputes(ListDisputesParams{PaymentIntent: strPtr("pi_target")})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, byIntent.ID, list.Data[0].ID)

	// A payment_intent filter never matches disputes without one.
	list, err = svc.ListDisputes(ListDisputesParams{PaymentIntent: strPtr("pi_other")})
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestUpdateDisputeEvidence(t *testing.T) {
	svc, st := newTestService(t)
	d := seedDispute(st, "needs_response", 10)

	got, err := svc.UpdateDispute(UpdateDisputeParams{
		Dispute: d.ID,
		Evidence: map[string]any{
			"uncategorized_text":             "it was legit",
			"duplicate_charge_explanation":   "not a duplicate",
			"cancellation_policy_disclosure": "shown at checkout",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Evidence.UncategorizedText)
	assert.Equal(t, "it was legit", *got.Evidence.UncategorizedText)
	require.NotNil(t, got.Evidence.DuplicateChargeExplanation)
	require.NotNil(t, got.Evidence.CancellationPolicyDisclosure)
}

func TestUpdateDisputeNullClearsAbsentKeeps(t *testing.T) {
	svc, st := newTestService(t)
	d := seedDispute(st, "needs_response", 10)
	d.Evidence.UncategorizedText = strPtr("old text")
	d.Evidence.DuplicateChargeExplanation = strPtr("old explanation")

	got, err := svc.UpdateDispute(UpdateDisputeParams{
		Dispute:  d.ID,
		Evidence: map[string]any{"uncategorized_text": nil},
	})
	require.NoError(t, err)
	assert.Nil(t, got.Evidence.UncategorizedText)
	require.NotNil(t, got.Evidence.DuplicateChargeExplanation)
	assert.Equal(t, "old explanation", *got.Evidence.DuplicateChargeExplanation)
}

func TestUpdateDisputeIgnoresUnknownEvidenceKeys(t *testing.T) {
	svc, st := newTestService(t)
	d := seedDispute(st, "needs_response", 10)
	d.Evidence.CancellationRebuttal = strPtr("rebuttal stays")

	got, err := svc.UpdateDispute(UpdateDisputeParams{
		Dispute: d.ID,
		Evidence: map[string]any{
			"cancellation_rebuttal": "attempted overwrite",
			"shipping_carrier":      "ups",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Evidence.CancellationRebuttal)
	assert.Equal(t, "rebuttal stays", *got.Evidence.CancellationRebuttal)
}

func TestUpdateDisputeNonStringEvidence(t *testing.T) {
	svc, st := newTestService(t)
	d := seedDispute(st, "needs_response", 10)

	_, err := svc.UpdateDispute(UpdateDisputeParams{
		Dispute:  d.ID,
		Evidence: map[string]any{"uncategorized_text": 42.0},
	})
	require.Error(t, err)
	assert.Equal(t,
		"Invalid evidence structure: Field 'uncategorized_text': Input should be a valid string",
		err.Error())
}

func TestUpdateDisputeNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateDispute(UpdateDisputeParams{Dispute: "dp_ghost"})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindNotFound))
	assert.Equal(t, "Dispute with ID 'dp_ghost' not found.", err.Error())

	_, err = svc.UpdateDispute(UpdateDisputeParams{Dispute: ""})
	require.Error(t, err)
	assert.Equal(t, "Dispute with ID '' not found.", err.Error())
}

func TestUpdateDisputeTerminalStatus(t *testing.T) {
	svc, st := newTestService(t)

	for _, status := range []string{"closed", "won", "lost"} {
		d := seedDispute(st, status, 10)
		_, err := svc.UpdateDispute(UpdateDisputeParams{Dispute: d.ID})
		require.Error(t, err)
		assert.Equal(t,
			"Dispute '"+d.ID+"' cannot be updated because its status is '"+status+"'.",
			err.Error())
	}
}

func TestUpdateDisputeSubmit(t *testing.T) {
	svc, st := newTestService(t)

	d := seedDispute(st, "warning_needs_response", 10)
	got, err := svc.UpdateDispute(UpdateDisputeParams{
		Dispute:  d.ID,
		Evidence: map[string]any{"uncategorized_text": "proof"},
		Submit:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "under_review", got.Status)
}

func TestUpdateDisputeSubmitNeedsEvidenceInSameCall(t *testing.T) {
	svc, st := newTestService(t)

	d := seedDispute(st, "warning_needs_response", 10)
	d.Evidence.UncategorizedText = strPtr("staged earlier")

	got, err := svc.UpdateDispute(UpdateDisputeParams{Dispute: d.ID, Submit: true})
	require.NoError(t, err)
	assert.Equal(t, "warning_needs_response", got.Status)

	got, err = svc.UpdateDispute(UpdateDisputeParams{
		Dispute: d.ID, Submit: true, Evidence: map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, "warning_needs_response", got.Status)
}

func TestUpdateDisputeSubmitOtherStatusUnchanged(t *testing.T) {
	svc, st := newTestService(t)

	d := seedDispute(st, "needs_response", 10)
	got, err := svc.UpdateDispute(UpdateDisputeParams{
		Dispute:  d.ID,
		Evidence: map[string]any{"uncategorized_text": "proof"},
		Submit:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "needs_response", got.Status)
}
