// services/condition.go - Declarative reward conditions
package services

import (
	"encoding/json"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
)

// ConditionField names the attribute a condition reads from the user's
// current state.
type ConditionField string

const (
	FieldStreak ConditionField = "streak"
	FieldXP     ConditionField = "xp"
	FieldLevel  ConditionField = "level"
)

// ConditionOperator is the comparison applied between the live attribute and
// the condition's threshold.
type ConditionOperator string

const (
	OpGTE ConditionOperator = ">="
	OpLTE ConditionOperator = "<="
	OpGT  ConditionOperator = ">"
	OpLT  ConditionOperator = "<"
	OpEQ  ConditionOperator = "=="
)

// Condition is the (field, operator, value) triple gating achievements and
// quests. A nil Value means the condition was authored without a threshold
// and can never be met.
type Condition struct {
	Field    ConditionField    `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    *int              `json:"value"`
}

// ParseCondition decodes the JSON triple stored on achievements and quests.
func ParseCondition(raw string) (Condition, error) {
	var cond Condition
	err := json.Unmarshal([]byte(raw), &cond)
	return cond, err
}

// Met evaluates the condition against the current streak and user snapshot.
// Unknown fields, unknown operators, and missing values all evaluate to false
// rather than erroring: malformed authoring data fails closed.
func (c Condition) Met(streak *models.Streak, user *models.User) bool {
	if c.Value == nil {
		return false
	}

	var actual int
	switch c.Field {
	case FieldStreak:
		if streak == nil {
			return false
		}
		actual = streak.CurrentStreak
	case FieldXP:
		if user == nil {
			return false
		}
		actual = user.XP
	case FieldLevel:
		if user == nil {
			return false
		}
		actual = user.Level
	default:
		return false
	}

	switch c.Operator {
	case OpGTE:
		return actual >= *c.Value
	case OpLTE:
		return actual <= *c.Value
	case OpGT:
		return actual > *c.Value
	case OpLT:
		return actual < *c.Value
	case OpEQ:
		return actual == *c.Value
	default:
		return false
	}
}
