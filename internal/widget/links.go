package widget

import (
	"fmt"
	"net/url"
	"strings"
)

// ReportURL returns the deep link the widget redirects to for a report
// page. host is the Creator web origin for the account's data center.
func ReportURL(host, owner, app, report string) string {
	return fmt.Sprintf("%s/%s/%s/#Report:%s",
		strings.TrimSuffix(host, "/"),
		url.PathEscape(owner),
		url.PathEscape(app),
		url.PathEscape(report),
	)
}

// RecordURL returns the deep link for a single record inside a report.
func RecordURL(host, owner, app, report, id string) string {
	return fmt.Sprintf("%s?ID=%s", ReportURL(host, owner, app, report), url.QueryEscape(id))
}

// FormURL returns the deep link for a form page.
func FormURL(host, owner, app, form string) string {
	return fmt.Sprintf("%s/%s/%s/#Form:%s",
		strings.TrimSuffix(host, "/"),
		url.PathEscape(owner),
		url.PathEscape(app),
		url.PathEscape(form),
	)
}
