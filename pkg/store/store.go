package store

// Store is an interface for managing profiles, teams, applications,
// hackathons, registrations, and webhooks.
type Store interface {
	ProfileStore
	TeamStore
	MembershipStore
	ApplicationStore
	HackathonStore
	RegistrationStore
	WebhookStore
}
