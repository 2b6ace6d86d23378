package logic

import (
	"testing"

	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/stretchr/testify/require"
)

func TestSelectedDepartment(t *testing.T) {
	departments := []dbclient.Department{
		{Name: "General Support"},
		{Name: "Billing"},
	}

	department, ok := SelectedDepartment(departments, []string{"1"})
	require.True(t, ok)
	require.Equal(t, "Billing", department.Name)
}

func TestSelectedDepartmentOutOfRange(t *testing.T) {
	departments := []dbclient.Department{
		{Name: "General Support"},
	}

	for _, value := range []string{"1", "-1", "999"} {
		_, ok := SelectedDepartment(departments, []string{value})
		require.False(t, ok, "index %s must not resolve", value)
	}
}

func TestSelectedDepartmentMalformedValue(t *testing.T) {
	departments := []dbclient.Department{
		{Name: "General Support"},
	}

	_, ok := SelectedDepartment(departments, []string{"billing"})
	require.False(t, ok)

	_, ok = SelectedDepartment(departments, nil)
	require.False(t, ok)
}

func TestFormatThreadTopic(t *testing.T) {
	topic := FormatThreadTopic("General Support", 123456789)
	require.Equal(t, "Department: General Support | User ID: 123456789", topic)
}

func TestDepartmentSelectCustomIdRoundTrip(t *testing.T) {
	customId := DepartmentSelectCustomId("abc-123")
	require.True(t, IsDepartmentSelectCustomId(customId))
	require.Equal(t, "abc-123", DepartmentSelectSessionId(customId))
}

func TestIsDepartmentSelectCustomIdRejectsOthers(t *testing.T) {
	require.False(t, IsDepartmentSelectCustomId("multipanel"))
	require.False(t, IsDepartmentSelectCustomId(""))
}

func TestDepartmentSelectOptions(t *testing.T) {
	departments := []dbclient.Department{
		{Name: "General Support"},
		{Name: "Billing"},
	}

	options := departmentSelectOptions(departments)
	require.Len(t, options, 2)

	require.Equal(t, "General Support", options[0].Label)
	require.Equal(t, "0", options[0].Value)
	require.Equal(t, "Billing", options[1].Label)
	require.Equal(t, "1", options[1].Value)
}
