package service

// BuildFlyerPrompt returns the extraction prompt sent with every flyer image.
// The reply schema here is what ParseFlyerReply decodes.
func BuildFlyerPrompt() string {
	return `You are an event flyer analysis assistant. Look at the provided image and decide whether it is an event flyer (a poster or handbill advertising a concert, club night, exhibition, festival or similar event).

If it is an event flyer, extract:
1. Event names (one entry per event if the flyer lists several)
2. Event dates, normalized to YYYY-MM-DD. If the year or month is ambiguous, infer it from context such as weekdays, other dates on the flyer or the season, and give your best guess.
3. Venue names, exactly as printed (keep the original script, e.g. Japanese)
4. Location information for each venue (city, ward, address or area)

Respond with a single JSON object and nothing else, using exactly this schema:
{
  "is_event_flyer": true,
  "confidence": 0.0,
  "event_names": ["event name 1"],
  "dates": ["2024-01-01"],
  "venues": ["venue name 1"],
  "locations": ["location 1"]
}

"is_event_flyer" must be a boolean. "confidence" must be a number between 0.0 and 1.0 expressing how sure you are of the classification. All list fields must be arrays of strings, in the order they appear on the flyer; use an empty array when nothing is found.

If the image is not an event flyer, set "is_event_flyer" to false, set "confidence" accordingly and leave every list empty.`
}
