package access

// Capability is an action gated by role.
type Capability uint

const (
	// ManageHackathons allows creating, updating and deleting hackathons.
	ManageHackathons Capability = 1 << iota

	// DeleteAnyTeam allows deleting teams the actor does not captain.
	DeleteAnyTeam

	// ViewRegistrations allows listing a hackathon's registered teams.
	ViewRegistrations

	// ManageRoles allows changing another user's role.
	ManageRoles

	// ManageWebhooks allows managing notification webhooks.
	ManageWebhooks
)

// CapabilitySet is a set of capabilities.
type CapabilitySet uint

// Has reports whether the set contains c.
func (s CapabilitySet) Has(c Capability) bool {
	return uint(s)&uint(c) != 0
}

func set(cs ...Capability) CapabilitySet {
	var s uint
	for _, c := range cs {
		s |= uint(c)
	}
	return CapabilitySet(s)
}

var capabilities = map[Role]CapabilitySet{
	Participant: set(),
	Judge:       set(ViewRegistrations),
	Organizer:   set(ManageHackathons, ViewRegistrations),
	Admin:       set(ManageHackathons, DeleteAnyTeam, ViewRegistrations, ManageRoles, ManageWebhooks),
}

// Capabilities returns the capabilities granted to a role. Unknown roles get
// none.
func Capabilities(r Role) CapabilitySet {
	return capabilities[r]
}

// Can reports whether role r grants capability c.
func Can(r Role, c Capability) bool {
	return Capabilities(r).Has(c)
}
