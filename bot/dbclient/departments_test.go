package dbclient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDepartments(t *testing.T) {
	defaults := DefaultDepartments()

	require.Len(t, defaults, 4)
	require.Equal(t, "General Support", defaults[0].Name)
	require.Equal(t, "Technical Support", defaults[1].Name)
	require.Equal(t, "Billing", defaults[2].Name)
	require.Equal(t, "Report", defaults[3].Name)

	for _, department := range defaults {
		require.Nil(t, department.CategoryId)
	}
}

func TestRemoveByNameCaseInsensitive(t *testing.T) {
	departments := []Department{
		{Name: "Billing"},
		{Name: "Report"},
	}

	remaining := removeByName(departments, "bIlLiNg")
	require.Len(t, remaining, 1)
	require.Equal(t, "Report", remaining[0].Name)
}

func TestRemoveByNameNoMatch(t *testing.T) {
	departments := []Department{
		{Name: "Billing"},
	}

	remaining := removeByName(departments, "Nonexistent")
	require.Equal(t, departments, remaining)
}

func TestRemoveByNameDeletesAllMatches(t *testing.T) {
	departments := []Department{
		{Name: "Billing"},
		{Name: "billing"},
		{Name: "Report"},
	}

	remaining := removeByName(departments, "Billing")
	require.Len(t, remaining, 1)
	require.Equal(t, "Report", remaining[0].Name)
}

func TestSetCategoryFirstMatchOnly(t *testing.T) {
	departments := []Department{
		{Name: "Report"},
		{Name: "Billing"},
		{Name: "billing"},
	}

	updated, ok := setCategory(departments, "BILLING", 42)
	require.True(t, ok)

	require.Nil(t, updated[0].CategoryId)
	require.NotNil(t, updated[1].CategoryId)
	require.EqualValues(t, 42, *updated[1].CategoryId)
	require.Nil(t, updated[2].CategoryId)
}

func TestSetCategoryNotFound(t *testing.T) {
	departments := []Department{
		{Name: "Billing"},
	}

	updated, ok := setCategory(departments, "Nonexistent", 42)
	require.False(t, ok)
	require.Nil(t, updated[0].CategoryId)
}

func TestSetCategoryEmptyList(t *testing.T) {
	_, ok := setCategory(nil, "Billing", 42)
	require.False(t, ok)
}
