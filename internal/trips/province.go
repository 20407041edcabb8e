package trips

import "slices"

// knownLocations is the fixed vocabulary of provinces and countries that
// appear in the seeded catalogue.
var knownLocations = []string{
	"ตราด", "กรุงเทพมหานคร", "ชลบุรี", "กาญจนบุรี", "เชียงใหม่", "สตูล",
	"ไต้หวัน", "ญี่ปุ่น", "ฝรั่งเศส", "ฟินแลนด์",
}

// UnspecifiedProvince is reported when a trip's tags name no known location.
const UnspecifiedProvince = "ไม่ระบุ"

// ProvinceFromTags classifies a trip's primary province by checking its tags
// against the known-location vocabulary, falling back to the last tag, or to
// UnspecifiedProvince when there are no tags. Illustrative categorization,
// not a geocoder.
func ProvinceFromTags(tags []string) string {
	for _, tag := range tags {
		if slices.Contains(knownLocations, tag) {
			return tag
		}
	}
	if len(tags) > 0 {
		return tags[len(tags)-1]
	}
	return UnspecifiedProvince
}
