// Package docid derives the deterministic document keys that guarantee at
// most one checkout and one self-registration per user per event. The
// canonical order is eventID first, then userID; every call site goes
// through here.
package docid

// Compose builds the composite document key for an (event, user) pair.
func Compose(eventID, userID string) string {
	return eventID + "_" + userID
}
