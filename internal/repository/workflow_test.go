package repository

import (
	"errors"
	"testing"
)

func TestValidateStepOrders(t *testing.T) {
	steps := func(orders ...int) []ApprovalStep {
		out := make([]ApprovalStep, 0, len(orders))
		for _, order := range orders {
			out = append(out, ApprovalStep{ApproverID: "approver", Order: order})
		}
		return out
	}

	tests := []struct {
		name    string
		steps   []ApprovalStep
		wantErr bool
	}{
		{"single step", steps(1), false},
		{"contiguous", steps(1, 2, 3), false},
		{"contiguous out of order", steps(2, 1, 3), false},
		{"gap strands a step", steps(1, 3), true},
		{"duplicate order", steps(1, 1, 2), true},
		{"starts at zero", steps(0, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStepOrders(tt.steps)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateStepOrders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrStepsNotSequential) {
				t.Errorf("Expected ErrStepsNotSequential, got %v", err)
			}
		})
	}
}
