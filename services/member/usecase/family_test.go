package usecase

import (
	"testing"

	"memberhub/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeFamilyRecord(t *testing.T) {
	base := &domain.FamilyInput{
		FatherName:    "Joe",
		FatherContact: "111",
		MotherName:    "Ann",
		Address:       "12 Elm St",
		SpouseName:    "Sam",
		SpouseContact: "222",
	}

	t.Run("parents and address always kept", func(t *testing.T) {
		rec := ShapeFamilyRecord("single", base)
		assert.Equal(t, "Joe", rec.FatherName)
		assert.Equal(t, "Ann", rec.MotherName)
		assert.Equal(t, "12 Elm St", rec.Address)
	})

	t.Run("spouse fields dropped unless married", func(t *testing.T) {
		for _, status := range []string{"single", "divorced", "widowed", ""} {
			rec := ShapeFamilyRecord(status, base)
			assert.Empty(t, rec.SpouseName, status)
			assert.Empty(t, rec.SpouseContact, status)
			assert.Zero(t, rec.NumberOfChildren, status)
		}
	})

	t.Run("married keeps spouse fields, any casing", func(t *testing.T) {
		for _, status := range []string{"married", "MARRIED", " Married "} {
			rec := ShapeFamilyRecord(status, base)
			assert.Equal(t, "Sam", rec.SpouseName, status)
			assert.Equal(t, "222", rec.SpouseContact, status)
		}
	})

	t.Run("children list kept only when length matches count", func(t *testing.T) {
		in := *base
		in.NumberOfChildren = 2
		in.ChildrenNames = []string{"A"}

		rec := ShapeFamilyRecord("married", &in)
		require.Equal(t, 2, rec.NumberOfChildren)
		assert.Empty(t, rec.ChildrenNames)

		in.ChildrenNames = []string{"A", "B"}
		rec = ShapeFamilyRecord("married", &in)
		assert.Equal(t, domain.StringList{"A", "B"}, rec.ChildrenNames)
	})

	t.Run("zero count drops the list", func(t *testing.T) {
		in := *base
		in.NumberOfChildren = 0
		in.ChildrenNames = []string{"A"}

		rec := ShapeFamilyRecord("married", &in)
		assert.Empty(t, rec.ChildrenNames)
	})
}
