package supply

// TranslateFunc is the synchronous translation lookup supplied by the
// surrounding application. Keys are fully qualified by domain
// (categories.*, products.*, units.*, alerts.*); params interpolate
// into the message. Implementations return the key itself when no
// translation exists.
type TranslateFunc func(key string, params map[string]string) string

// passthroughTranslate is used when no translator is supplied
func passthroughTranslate(key string, params map[string]string) string {
	return key
}

// displayName resolves an item's display name: catalog translation for
// known, non-custom items, otherwise the stored name
func displayName(item *InventoryItem, translate TranslateFunc) string {
	if item.ItemRef != CustomItemRef && item.ItemRef != "" {
		key := productNameKey(item.ItemRef)
		if name := translate(key, nil); name != "" && name != key {
			return name
		}
	}
	return item.Name
}
