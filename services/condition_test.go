package services

import (
	"testing"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
)

func intPtr(n int) *int {
	return &n
}

func TestConditionMet(t *testing.T) {
	streak := &models.Streak{CurrentStreak: 5}
	user := &models.User{XP: 250, Level: 1}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			name: "streak gte met at boundary",
			cond: Condition{Field: FieldStreak, Operator: OpGTE, Value: intPtr(5)},
			want: true,
		},
		{
			name: "streak gte not met",
			cond: Condition{Field: FieldStreak, Operator: OpGTE, Value: intPtr(6)},
			want: false,
		},
		{
			name: "xp gt",
			cond: Condition{Field: FieldXP, Operator: OpGT, Value: intPtr(249)},
			want: true,
		},
		{
			name: "xp lt",
			cond: Condition{Field: FieldXP, Operator: OpLT, Value: intPtr(250)},
			want: false,
		},
		{
			name: "level eq",
			cond: Condition{Field: FieldLevel, Operator: OpEQ, Value: intPtr(1)},
			want: true,
		},
		{
			name: "level lte",
			cond: Condition{Field: FieldLevel, Operator: OpLTE, Value: intPtr(0)},
			want: false,
		},
		{
			name: "unknown field fails closed",
			cond: Condition{Field: "wins", Operator: OpGTE, Value: intPtr(1)},
			want: false,
		},
		{
			name: "unknown operator fails closed",
			cond: Condition{Field: FieldStreak, Operator: "!=", Value: intPtr(1)},
			want: false,
		},
		{
			name: "missing value fails closed",
			cond: Condition{Field: FieldStreak, Operator: OpGTE},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Met(streak, user); got != tt.want {
				t.Fatalf("Met() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditionMetNilSnapshots(t *testing.T) {
	cond := Condition{Field: FieldStreak, Operator: OpGTE, Value: intPtr(1)}
	if cond.Met(nil, &models.User{}) {
		t.Fatal("streak condition must fail without a streak snapshot")
	}

	cond = Condition{Field: FieldXP, Operator: OpGTE, Value: intPtr(0)}
	if cond.Met(&models.Streak{}, nil) {
		t.Fatal("xp condition must fail without a user snapshot")
	}
}

func TestParseCondition(t *testing.T) {
	cond, err := ParseCondition(`{"field": "streak", "operator": ">=", "value": 7}`)
	if err != nil {
		t.Fatalf("parse condition: %v", err)
	}
	if cond.Field != FieldStreak || cond.Operator != OpGTE {
		t.Fatalf("unexpected triple: %+v", cond)
	}
	if cond.Value == nil || *cond.Value != 7 {
		t.Fatalf("expected value 7, got %v", cond.Value)
	}

	if _, err := ParseCondition(`{"field":`); err == nil {
		t.Fatal("expected error for truncated JSON")
	}

	// Absent value stays nil and fails closed at evaluation time.
	cond, err = ParseCondition(`{"field": "xp", "operator": ">="}`)
	if err != nil {
		t.Fatalf("parse condition: %v", err)
	}
	if cond.Value != nil {
		t.Fatalf("expected nil value, got %v", cond.Value)
	}
	if cond.Met(&models.Streak{}, &models.User{XP: 100}) {
		t.Fatal("condition without a value must not be met")
	}
}
