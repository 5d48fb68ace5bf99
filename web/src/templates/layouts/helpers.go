package layouts

// AppName is the product name shown in titles and the header.
const AppName = "Computer Based Test"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + AppName
	}
	return AppName
}
