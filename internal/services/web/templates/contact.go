package templates

import (
	"strings"

	"github.com/trueluxconstruction/landing/internal/services/contact"
)

// ContactStatusID is the element the contact status fragment is swapped into.
const ContactStatusID = "contact-status"

func statusReason(result contact.Result) string {
	if result.OK() {
		return "success"
	}
	return string(result.Reason)
}

func contactStatusMessage(loc Localizer, result contact.Result) string {
	switch result.Reason {
	case "":
		return T(loc, "contact.status.success")
	case contact.ReasonMissingField:
		labels := make([]string, 0, len(result.Fields))
		for _, field := range result.Fields {
			labels = append(labels, T(loc, fieldLabelKey(field)))
		}
		return T(loc, "contact.status.missing", strings.Join(labels, ", "))
	case contact.ReasonUnavailable:
		return T(loc, "contact.status.unavailable")
	default:
		return T(loc, "contact.status.failed")
	}
}

func fieldLabelKey(field string) string {
	switch field {
	case contact.FieldProjectType:
		return "contact.form.project_type"
	default:
		return "contact.form." + field
	}
}
