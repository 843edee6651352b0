package capability

// Capability is one back-office permission. The set replaces the string
// slices the legacy clients checked with includes().
type Capability string

const (
	ManageProperties   Capability = "properties.manage"
	ManageOffers       Capability = "offers.manage"
	ManageBlog         Capability = "blog.manage"
	ManageTestimonials Capability = "testimonials.manage"
	ManageUsers        Capability = "users.manage"
	ManageLeads        Capability = "leads.manage"
	ManageCRM          Capability = "crm.manage"
	UploadMedia        Capability = "media.upload"
)

// Set is a capability membership set.
type Set map[Capability]struct{}

func NewSet(caps ...Capability) Set {
	s := make(Set, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Has is the single membership predicate used by middleware and services.
func (s Set) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// ForRole maps a user role to its capability set.
func ForRole(role string) Set {
	switch role {
	case "admin":
		return NewSet(
			ManageProperties, ManageOffers, ManageBlog, ManageTestimonials,
			ManageUsers, ManageLeads, ManageCRM, UploadMedia,
		)
	case "editor":
		return NewSet(ManageBlog, ManageTestimonials, UploadMedia)
	case "agent":
		return NewSet(ManageLeads, ManageCRM, ManageOffers)
	default:
		return NewSet()
	}
}
