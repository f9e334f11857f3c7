package cases

const (
	// AnimationLength is the number of items in the spin animation strip.
	AnimationLength = 60

	// WinningIndex is the 0-based strip position the spin always lands
	// on; it is overwritten with the committed reward.
	WinningIndex = 30

	// SampleItemsPerCase caps the preview items returned per case by List.
	SampleItemsPerCase = 20

	// MinSampleItems is the preview threshold below which the fallback
	// starter list is substituted.
	MinSampleItems = 5
)

// Log field names
const (
	LogFieldCaseID = "case_id"
	LogFieldUserID = "user_id"
	LogFieldMethod = "payment_method"
	LogFieldSlot   = "slot"
	LogFieldItem   = "item"
)
