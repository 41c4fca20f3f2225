package constants

// Event subjects (NSQ topics / NATS subjects)
const (
	// Auth
	SubjectOTPRequested   = "otp.requested"
	SubjectUserRegistered = "user.registered"

	// Business
	SubjectBusinessCreated = "business.created"
	SubjectBusinessUpdated = "business.updated"
	SubjectBusinessDeleted = "business.deleted"
)
