package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHas(t *testing.T) {
	s := NewSet(ManageBlog, UploadMedia)
	assert.True(t, s.Has(ManageBlog))
	assert.True(t, s.Has(UploadMedia))
	assert.False(t, s.Has(ManageUsers))
}

func TestForRoleAdminHasEverything(t *testing.T) {
	s := ForRole("admin")
	for _, c := range []Capability{
		ManageProperties, ManageOffers, ManageBlog, ManageTestimonials,
		ManageUsers, ManageLeads, ManageCRM, UploadMedia,
	} {
		assert.True(t, s.Has(c), string(c))
	}
}

func TestForRoleEditor(t *testing.T) {
	s := ForRole("editor")
	assert.True(t, s.Has(ManageBlog))
	assert.True(t, s.Has(ManageTestimonials))
	assert.True(t, s.Has(UploadMedia))
	assert.False(t, s.Has(ManageUsers))
	assert.False(t, s.Has(ManageLeads))
}

func TestForRoleAgent(t *testing.T) {
	s := ForRole("agent")
	assert.True(t, s.Has(ManageLeads))
	assert.True(t, s.Has(ManageCRM))
	assert.True(t, s.Has(ManageOffers))
	assert.False(t, s.Has(ManageBlog))
}

func TestForRoleUnknownIsEmpty(t *testing.T) {
	s := ForRole("visitor")
	assert.False(t, s.Has(ManageLeads))
	assert.Empty(t, s)
}
