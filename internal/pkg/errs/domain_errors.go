package errs

// Domain-specific sentinel errors shared by the command and query layers
var (
	// Transaction errors
	ErrTransactionNotFound = New("transaction not found")
	ErrTransactionAccess   = New("no access to transaction")
	ErrActionNotAllowed    = New("action not allowed")
	ErrStaffOnly           = New("staff or admin role required")

	// Dispute errors
	ErrDisputeNotFound      = New("dispute not found")
	ErrDisputeAlreadyExists = New("transaction already has a dispute")
	ErrDisputeResolved      = New("dispute already resolved")
	ErrDisputeCreateFailed  = New("could not create dispute")

	// Intent errors
	ErrIntentNotFound     = New("intent not found")
	ErrIntentNotClaimable = New("intent is not pending")

	// Validation errors
	ErrDomainValidation = New("domain validation error")
)
