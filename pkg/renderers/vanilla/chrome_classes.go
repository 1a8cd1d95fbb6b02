package vanilla

import "github.com/goliatone/go-medrec/pkg/segment"

// ChromeClass is a typed identifier for semantic CSS classes.
type ChromeClass string

const (
	ClassApp             ChromeClass = "app"
	ClassHeader          ChromeClass = "app-header"
	ClassSection         ChromeClass = "form-section"
	ClassErrors          ChromeClass = "form-errors"
	ClassSubmit          ChromeClass = "submit-button"
	ClassPrediction      ChromeClass = "prediction-content"
	ClassError           ChromeClass = "error-message"
	ClassSeverity        ChromeClass = "severity-level"
	ClassRecommendations ChromeClass = "recommendations-title"
	ClassMedicine        ChromeClass = "medicine-item"
	ClassNote            ChromeClass = "note"
	ClassDivider         ChromeClass = "divider"
)

// lineMarkup maps a segment tag to its element and class.
func lineMarkup(tag segment.Tag) (element string, class ChromeClass) {
	switch tag {
	case segment.TagSeverity:
		return "h3", ClassSeverity
	case segment.TagRecommendations:
		return "h3", ClassRecommendations
	case segment.TagListItem:
		return "div", ClassMedicine
	case segment.TagNote:
		return "div", ClassNote
	case segment.TagDivider:
		return "hr", ClassDivider
	default:
		return "div", ""
	}
}
