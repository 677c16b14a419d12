package github

// Issue is the subset of the GitHub issue payload the pipeline cares about.
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

// Comment is the subset of the GitHub issue comment payload the pipeline
// cares about.
type Comment struct {
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
}

type issueRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
}

type commentRequest struct {
	Body string `json:"body"`
}
