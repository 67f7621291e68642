package docscout_test

import (
	"testing"

	"github.com/fwojciec/docscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRoles(t *testing.T) {
	t.Parallel()

	cfg := docscout.DefaultRoleConfig()

	t.Run("single doctor is the owner", func(t *testing.T) {
		t.Parallel()

		people := docscout.AssignRoles(
			[]docscout.Person{{Name: "Jane Doe"}}, "Anytown Dental", "", cfg)
		require.Len(t, people, 1)
		assert.Equal(t, docscout.RoleOwner, people[0].Role)
	})

	t.Run("practice name containing a last name wins", func(t *testing.T) {
		t.Parallel()

		people := docscout.AssignRoles([]docscout.Person{
			{Name: "Jane Doe"},
			{Name: "John Smith"},
		}, "Smith Family Dental", "", cfg)

		assert.Equal(t, docscout.RoleAssociate, people[0].Role)
		assert.Equal(t, docscout.RoleOwner, people[1].Role)
	})

	t.Run("weighted scoring prefers the prominent name", func(t *testing.T) {
		t.Parallel()

		siteText := "jane doe jane doe jane doe jane doe jane doe welcomes you"
		people := docscout.AssignRoles([]docscout.Person{
			{Name: "John Smith"},
			{Name: "Jane Doe"},
		}, "Anytown Dental", siteText, cfg)

		assert.Equal(t, docscout.RoleAssociate, people[0].Role)
		assert.Equal(t, docscout.RoleOwner, people[1].Role)
	})

	t.Run("age in the owner window breaks even scores", func(t *testing.T) {
		t.Parallel()

		young, mid := 28, 45
		people := docscout.AssignRoles([]docscout.Person{
			{Name: "Jane Doe", Age: &young},
			{Name: "John Smith", Age: &mid},
		}, "Anytown Dental", "", cfg)

		// Order gives Doe +6 vs Smith +3, but the age bonus (+10) flips it.
		assert.Equal(t, docscout.RoleOwner, people[1].Role)
	})

	t.Run("score ties keep the earliest listing", func(t *testing.T) {
		t.Parallel()

		people := docscout.AssignRoles([]docscout.Person{
			{Name: "Jane Doe"},
			{Name: "Jane Doe"},
		}, "", "", docscout.RoleConfig{NameWeight: 0, OrderWeight: 0})

		assert.Equal(t, docscout.RoleOwner, people[0].Role)
		assert.Equal(t, docscout.RoleAssociate, people[1].Role)
	})

	t.Run("exactly one owner for any non-empty input", func(t *testing.T) {
		t.Parallel()

		age := 40
		inputs := [][]docscout.Person{
			{{Name: "Jane Doe"}},
			{{Name: "Jane Doe"}, {Name: "John Smith"}},
			{{Name: "Jane Doe", Age: &age}, {Name: "John Smith", Age: &age}, {Name: "Mary Johnson"}},
		}
		for _, people := range inputs {
			got := docscout.AssignRoles(people, "Anytown Dental", "some site text", cfg)
			owners := 0
			for _, p := range got {
				if p.Role == docscout.RoleOwner {
					owners++
				}
			}
			assert.Equal(t, 1, owners)
		}
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docscout.AssignRoles(nil, "Anytown Dental", "", cfg))
	})
}
