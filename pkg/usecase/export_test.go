package usecase

// Export unexported functions for testing
var (
	ValidateOptionsForTest = validateOptions
	FindProjectForTest     = findProject
)
