package utils

const (
	// Activity categories
	ActivityCategoryFood          = "food"
	ActivityCategoryAttraction    = "attraction"
	ActivityCategoryEntertainment = "entertainment"
	ActivityCategoryShopping      = "shopping"
	ActivityCategoryOther         = "other"

	// Budget category for lines derived from selected activities
	BudgetCategoryActivities = "Activities"

	// Prefix marking a budget line derived from an activity; such lines are
	// recomputed on read and cannot be deleted directly
	ActivityBudgetPrefix = "activity-"

	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrFailedToStore    = "Failed to store data"
	ErrFailedToRetrieve = "Failed to retrieve data"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)

// ActivityCategories lists the fixed activity category enumeration.
var ActivityCategories = []string{
	ActivityCategoryFood,
	ActivityCategoryAttraction,
	ActivityCategoryEntertainment,
	ActivityCategoryShopping,
	ActivityCategoryOther,
}
