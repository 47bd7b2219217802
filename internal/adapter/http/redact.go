package httpadapter

import "regexp"

var (
	attachmentsRE = regexp.MustCompile(`(?s)attachments:.*$`)
	emailRE       = regexp.MustCompile(`(?i)email[^:]*:\s*\S+`)
	phoneRE       = regexp.MustCompile(`(?i)phone[^:]*:\s*\S+`)
)

// redactYAML scrubs the attachments section and obvious contact fields
// from a brief before it is written to the log.
func redactYAML(yamlText string) string {
	out := attachmentsRE.ReplaceAllString(yamlText, "attachments: [REDACTED]")
	out = emailRE.ReplaceAllString(out, "email: [REDACTED]")
	out = phoneRE.ReplaceAllString(out, "phone: [REDACTED]")
	return out
}
