package settings

// Keys of the settings read by the public site.
const (
	InstagramGalleryEnabledKey = "instagram_gallery_enabled"
	InstagramPostCountKey      = "instagram_post_count"
	MenuPopupEnabledKey        = "menu_popup_enabled"
	MenuShowPriceKey           = "menu_show_price"
)

// Typed descriptors with the fallback used when a key is absent or the store
// cannot be read. Every boolean flag falls back to enabled.
var (
	InstagramGalleryEnabled = BooleanSetting{Key: InstagramGalleryEnabledKey, Default: true}
	InstagramPostCount      = IntegerSetting{Key: InstagramPostCountKey, Default: 5}
	MenuPopupEnabled        = BooleanSetting{Key: MenuPopupEnabledKey, Default: true}
	MenuShowPrice           = BooleanSetting{Key: MenuShowPriceKey, Default: true}
)

// Validator checks a raw value before it is written under a known key.
type Validator interface {
	SettingKey() string
	Validate(raw string) error
}

// known maps each typed key to its descriptor for write-side validation.
var known = map[string]Validator{
	InstagramGalleryEnabledKey: InstagramGalleryEnabled,
	InstagramPostCountKey:      InstagramPostCount,
	MenuPopupEnabledKey:        MenuPopupEnabled,
	MenuShowPriceKey:           MenuShowPrice,
}

// ValidatorFor returns the validator registered for key, if any.
func ValidatorFor(key string) (Validator, bool) {
	v, ok := known[key]
	return v, ok
}
