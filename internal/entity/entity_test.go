package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, e := range All() {
		got, ok := Parse(string(e))
		assert.True(t, ok, e)
		assert.Equal(t, e, got)
	}

	for _, name := range []string{"", "auth", "allData", "config", "Employees", "payrollRecords", "mail"} {
		_, ok := Parse(name)
		assert.False(t, ok, name)
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"name":                 "name",
		"baseSalary":           "base_salary",
		"contractEndDate":      "contract_end_date",
		"coatOfArmsUrl":        "coat_of_arms_url",
		"assignedToEmployeeId": "assigned_to_employee_id",
		"id":                   "id",
	}
	for in, want := range tests {
		assert.Equal(t, want, camelToSnake(in), in)
	}
}

func TestToColumns(t *testing.T) {
	cols := toColumns(map[string]any{"baseSalary": "4200.00", "name": "Ana"})
	assert.Equal(t, map[string]any{"base_salary": "4200.00", "name": "Ana"}, cols)
}
