package state

import "strings"

// FooterText returns the footer content for the current session.
func FooterText(loading bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if loading || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
