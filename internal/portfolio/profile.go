package portfolio

// Profile is the static content of the hero and contact sections
type Profile struct {
	Name string
	Role string
	Bio  string

	Skills []Skill

	Email       string
	GitHub      string
	GitHubURL   string
	LinkedIn    string
	LinkedInURL string
}

// Skill is one card under the hero
type Skill struct {
	Title string
	Items string
}

// Page is the data handed to the templates
type Page struct {
	Profile Profile
	State   ViewState

	// ProjectsURL is requested by the gallery while it is still loading.
	ProjectsURL string
	// NavURL prefixes the section id on nav requests.
	NavURL string
	// ScrollTo is the section the browser should scroll to after a nav swap.
	ScrollTo string
}
