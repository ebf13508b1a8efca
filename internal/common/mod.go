package common

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

const (
	REQUEST_TIMEOUT_SECS     = 50 * time.Second
	MONGO_DUPLICATE_KEY_CODE = 11000

	// Search gate: shorter queries are treated as "clear results" and
	// never reach the store.
	MIN_SEARCH_LENGTH  = 2
	MAX_SEARCH_RESULTS = 50

	MAX_ITEM_IMAGES = 10

	// Import responses log at most this many row errors in detail.
	MAX_IMPORT_ERROR_DETAILS = 5

	// Guard for walking parent chains; a longer chain means the stored
	// data already loops.
	MAX_TREE_DEPTH = 32
)

// IsEmptyString checks if a string is empty
func IsEmptyString(s string) bool {
	return strings.Compare(s, "") == 0
}
