package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.JobStatus
		to   domain.JobStatus
		want bool
	}{
		{"draft to sent", domain.JobDraft, domain.JobSent, true},
		{"skip ahead to scheduled", domain.JobDraft, domain.JobScheduled, true},
		{"in progress to completed", domain.JobInProgress, domain.JobCompleted, true},
		{"backwards is rejected", domain.JobScheduled, domain.JobSent, false},
		{"same status is rejected", domain.JobSent, domain.JobSent, false},
		{"cancel from accepted", domain.JobAccepted, domain.JobCancelled, true},
		{"completed is terminal", domain.JobCompleted, domain.JobCancelled, false},
		{"cancelled is terminal", domain.JobCancelled, domain.JobDraft, false},
		{"unknown target", domain.JobDraft, domain.JobStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanTransition(tt.from, tt.to))
		})
	}
}

func TestLifecycleStageFollowsStatus(t *testing.T) {
	paid := time.Now()
	tests := []struct {
		job       domain.Job
		wantStage domain.LifecycleStage
		wantLabel string
	}{
		{domain.Job{Status: domain.JobDraft, Sequence: 7}, domain.StageLead, "LEAD-0007"},
		{domain.Job{Status: domain.JobSent, Sequence: 7}, domain.StageProposal, "PROP-0007"},
		{domain.Job{Status: domain.JobInProgress, Sequence: 7}, domain.StageWorkOrder, "WO-0007"},
		{domain.Job{Status: domain.JobCompleted, Sequence: 7}, domain.StageInvoice, "INV-0007"},
		{domain.Job{Status: domain.JobCompleted, Sequence: 7, PaidAt: &paid}, domain.StageComplete, "DONE-0007"},
		{domain.Job{Status: domain.JobCancelled, Sequence: 7}, domain.StageComplete, "DONE-0007"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantStage, tt.job.LifecycleStage(), string(tt.job.Status))
		assert.Equal(t, tt.wantLabel, tt.job.DisplayNumber(), string(tt.job.Status))
	}
}

func TestFormatJobNumber(t *testing.T) {
	assert.Equal(t, "WO-0001", domain.FormatJobNumber(1))
	assert.Equal(t, "WO-0042", domain.FormatJobNumber(42))
	assert.Equal(t, "WO-12345", domain.FormatJobNumber(12345))
}

func TestDefaultPhasesBracketBillableRange(t *testing.T) {
	orders := make([]int, 0, len(domain.DefaultPhases))
	for _, p := range domain.DefaultPhases {
		orders = append(orders, p.SortOrder)
		assert.False(t, p.SortOrder >= domain.MinBillableSortOrder && p.SortOrder <= domain.MaxBillableSortOrder)
	}
	assert.Equal(t, []int{1, 2, 98, 99}, orders)
}
