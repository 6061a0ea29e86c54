package domain

import "strings"

// ParseCommand returns the command keyword of a message text.
func ParseCommand(text string) string {
	command := strings.Split(text, " ")
	return command[0]
}

// ParseCommandArgs returns everything after the command keyword.
func ParseCommandArgs(text string) string {
	command := strings.Split(text, " ")
	return strings.Join(command[1:], " ")
}

// ExtractCaptionLink pulls the video URL out of a delivery caption of the
// form "link: <url>, username: <name>". The URL is everything between
// "link:" and the next comma or the end of the caption. Returns an empty
// string when the caption carries no link field.
func ExtractCaptionLink(caption string) string {
	_, after, found := strings.Cut(caption, "link:")
	if !found {
		return ""
	}

	link, _, _ := strings.Cut(after, ",")

	return strings.TrimSpace(link)
}

// ExtractUsername returns the owning username of a video URL, taken from
// the path segment starting with '@'. Empty when the URL has no such
// segment.
func ExtractUsername(url string) string {
	for _, part := range strings.Split(url, "/") {
		if strings.HasPrefix(part, "@") {
			return part[1:]
		}
	}

	return ""
}
