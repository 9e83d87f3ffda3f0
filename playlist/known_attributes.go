package playlist

// Attribute names commonly found in the #EXTINF rows of IPTV playlists.
// They are provided for ergonomic lookups only; the parser itself treats
// every attribute as an opaque key-value pair.
const (
	AttrTvgID        = "tvg-id"
	AttrTvgName      = "tvg-name"
	AttrTvgLanguage  = "tvg-language"
	AttrTvgLogo      = "tvg-logo"
	AttrTvgLogoSmall = "tvg-logo-small"
	AttrTvgCountry   = "tvg-country"
	AttrGroupTitle   = "group-title"
	AttrParentCode   = "parent-code"
	AttrAudioTrack   = "audio-track"
	AttrTvgShift     = "tvg-shift"
	AttrTvgRec       = "tvg-rec"
	AttrAspectRatio  = "aspect-ratio"
	AttrTvgChNo      = "tvg-chno"
	AttrRadio        = "radio"
	AttrTvgURL       = "tvg-url"
)

// KnownAttributes lists every well-known attribute name.
var KnownAttributes = []string{
	AttrTvgID,
	AttrTvgName,
	AttrTvgLanguage,
	AttrTvgLogo,
	AttrTvgLogoSmall,
	AttrTvgCountry,
	AttrGroupTitle,
	AttrParentCode,
	AttrAudioTrack,
	AttrTvgShift,
	AttrTvgRec,
	AttrAspectRatio,
	AttrTvgChNo,
	AttrRadio,
	AttrTvgURL,
}
