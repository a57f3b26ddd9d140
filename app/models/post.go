package models

import "time"

// PublishDateFormat is the layout used for the human-readable publish date,
// e.g. "April 05, 2024".
const PublishDateFormat = "January 02, 2006"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeSave stamps the publish date if it has not been set yet.
func (p *Post) BeforeSave() {
	if p.Date == "" {
		p.Date = time.Now().Format(PublishDateFormat)
	}
}
